package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"Filmoteka/internal/cli/api"
	"Filmoteka/internal/config"
)

type movieGetCmd struct{}

func (movieGetCmd) Name() string        { return "movie-get" }
func (movieGetCmd) Description() string { return "Show one movie by id" }
func (movieGetCmd) Usage() string       { return "movie-get <id>" }

func (movieGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	token := loadToken()
	if token == "" {
		return errors.New("not logged in")
	}

	resp, body, err := api.GetJSON(endpoint(cfg, "/movies/"+args[0]), token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return errors.New("movie not found")
	case http.StatusUnauthorized:
		return errors.New("session expired, login again")
	default:
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}

	env, err := api.ParseEnvelope(body)
	if err != nil {
		return err
	}
	var m MovieDTO
	if err := json.Unmarshal(env.Data, &m); err != nil {
		return err
	}

	fmt.Fprintf(Out, "Title:    %s\n", m.Title)
	fmt.Fprintf(Out, "Type:     %s\n", m.Kind)
	fmt.Fprintf(Out, "Genres:   %s\n", strings.Join(m.Genres, ", "))
	fmt.Fprintf(Out, "Director: %s\n", m.Director)
	fmt.Fprintf(Out, "Year:     %d\n", m.ReleaseYear)
	fmt.Fprintf(Out, "Duration: %d min\n", m.Duration)
	fmt.Fprintf(Out, "Country:  %s (%s)\n", m.Country, m.Language)
	fmt.Fprintf(Out, "Budget:   %.0f\n", m.Budget)
	if m.Poster != "" {
		fmt.Fprintf(Out, "Poster:   %s\n", m.Poster)
	}
	if m.Creator != nil {
		fmt.Fprintf(Out, "Added by: %s <%s>\n", m.Creator.Name, m.Creator.Email)
	}
	return nil
}

func init() { RegisterCmd(movieGetCmd{}) }
