// Package cli implements the interactive client for authgate: a small
// REPL that registers accounts and logs in against the HTTP API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/config"
)

type App struct {
	config *config.Config
	client api.Client
	reader *bufio.Reader

	// token holds the bearer token from the last successful login.
	token string
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		client: api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) printHelp() {
	fmt.Println("Commands: register, login, token, ping, exit")
}

func (a *App) Run(ctx context.Context) {

	fmt.Printf("authgate client (%s)\n", a.config.ServerEndpointAddr)
	a.printHelp()

	for {
		fmt.Print("> ")

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}

		switch strings.TrimSpace(line) {
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "token":
			if a.token == "" {
				fmt.Println("Not logged in")
			} else {
				fmt.Println(a.token)
			}
		case "ping":
			if err := a.client.Ping(ctx); err != nil {
				fmt.Println("Server unavailable:", err.Error())
			} else {
				fmt.Println("OK")
			}
		case "exit", "quit":
			return
		case "":
		default:
			a.printHelp()
		}
	}
}
