package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"Filmoteka/internal/cli/api"
	"Filmoteka/internal/config"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new account and store session token" }
func (registerCmd) Usage() string       { return "register <name> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	req := RegisterRequest{
		Name:            args[0],
		Email:           args[1],
		Password:        args[2],
		ConfirmPassword: args[2],
	}
	resp, body, err := api.PostJSON(endpoint(cfg, "/auth/register"), req, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		if err := persistTokenFromBody(body); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	case http.StatusConflict:
		return errors.New("user with this email already exists")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(registerCmd{}) }
