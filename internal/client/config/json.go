package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authgate/internal/flagx"
)

// JsonConfig is the DTO for reading the client JSON configuration file.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. A requested but unreadable file panics at
// startup.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
}
