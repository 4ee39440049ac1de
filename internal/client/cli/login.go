package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/common"
)

func (a *App) Login(ctx context.Context) {

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

	token, err := a.client.Login(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Println("Login unsuccessful")
		} else {
			fmt.Println(err.Error())
		}
		return
	}

	a.token = token
	fmt.Println("Login successful. Use the token as: Authorization: Bearer <token>")
}
