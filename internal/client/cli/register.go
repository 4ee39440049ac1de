package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/common"
)

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name")
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword()
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	err = a.client.Register(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			fmt.Println("Username already exists")
		} else {
			fmt.Println(err.Error())
		}
		return
	}

	fmt.Println("Success!")
}
