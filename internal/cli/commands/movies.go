package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"Filmoteka/internal/cli/api"
	"Filmoteka/internal/config"
)

// MovieDTO — представление записи в ответах сервера.
type MovieDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Kind        string   `json:"type"`
	Genres      []string `json:"genres"`
	Director    string   `json:"director"`
	Budget      float64  `json:"budget"`
	Country     string   `json:"country"`
	Language    string   `json:"language"`
	Duration    int      `json:"duration"`
	ReleaseYear int      `json:"release_year"`
	Poster      string   `json:"poster"`
	Creator     *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"creator"`
}

type moviesCmd struct{}

func (moviesCmd) Name() string        { return "movies" }
func (moviesCmd) Description() string { return "List all movies in the collection" }
func (moviesCmd) Usage() string       { return "movies" }

func (moviesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	token := loadToken()
	if token == "" {
		return errors.New("not logged in")
	}

	resp, body, err := api.GetJSON(endpoint(cfg, "/movies"), token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("session expired, login again")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}

	env, err := api.ParseEnvelope(body)
	if err != nil {
		return err
	}
	var movies []MovieDTO
	if err := json.Unmarshal(env.Data, &movies); err != nil {
		return err
	}

	if len(movies) == 0 {
		fmt.Fprintln(Out, "No movies yet")
		return nil
	}
	for _, m := range movies {
		creator := ""
		if m.Creator != nil {
			creator = " by " + m.Creator.Name
		}
		fmt.Fprintf(Out, "%s  %s (%d, %s, %d min)%s\n", m.ID, m.Title, m.ReleaseYear, m.Kind, m.Duration, creator)
	}
	return nil
}

func init() { RegisterCmd(moviesCmd{}) }
