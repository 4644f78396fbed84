package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"Filmoteka/internal/cli/api"
	"Filmoteka/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show current session profile" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	token := loadToken()
	if token == "" {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}

	resp, body, err := api.GetJSON(endpoint(cfg, "/auth/profile"), token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		fmt.Fprintln(Out, "Session expired, login again")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}

	env, err := api.ParseEnvelope(body)
	if err != nil {
		return err
	}
	var user struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
