package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"Filmoteka/internal/cli/api"
	"Filmoteka/internal/config"
)

type movieDelCmd struct{}

func (movieDelCmd) Name() string        { return "movie-del" }
func (movieDelCmd) Description() string { return "Delete own movie by id" }
func (movieDelCmd) Usage() string       { return "movie-del <id>" }

func (movieDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	token := loadToken()
	if token == "" {
		return errors.New("not logged in")
	}

	resp, _, err := api.Delete(endpoint(cfg, "/movies/"+args[0]), token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Movie deleted")
		return nil
	case http.StatusNotFound:
		return errors.New("movie not found")
	case http.StatusForbidden:
		return errors.New("only the creator can delete this movie")
	case http.StatusUnauthorized:
		return errors.New("session expired, login again")
	default:
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}
}

func init() { RegisterCmd(movieDelCmd{}) }
