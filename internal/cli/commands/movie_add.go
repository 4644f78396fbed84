package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"Filmoteka/internal/cli/api"
	"Filmoteka/internal/config"
)

type CreateMovieRequest struct {
	Title       string   `json:"title"`
	Kind        string   `json:"type"`
	Genres      []string `json:"genres"`
	Director    string   `json:"director"`
	Budget      float64  `json:"budget"`
	Country     string   `json:"country"`
	Language    string   `json:"language,omitempty"`
	Duration    int      `json:"duration"`
	ReleaseYear int      `json:"release_year"`
}

type movieAddCmd struct{}

func (movieAddCmd) Name() string        { return "movie-add" }
func (movieAddCmd) Description() string { return "Add a movie to the collection" }
func (movieAddCmd) Usage() string {
	return "movie-add <title> <type> <genres,csv> <director> <budget> <country> <duration> <year>"
}

func (movieAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 8 {
		return ErrUsage
	}
	token := loadToken()
	if token == "" {
		return errors.New("not logged in")
	}

	budget, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return ErrUsage
	}
	duration, err := strconv.Atoi(args[6])
	if err != nil {
		return ErrUsage
	}
	year, err := strconv.Atoi(args[7])
	if err != nil {
		return ErrUsage
	}

	req := CreateMovieRequest{
		Title:       args[0],
		Kind:        args[1],
		Genres:      strings.Split(args[2], ","),
		Director:    args[3],
		Budget:      budget,
		Country:     args[5],
		Duration:    duration,
		ReleaseYear: year,
	}

	resp, body, err := api.PostJSON(endpoint(cfg, "/movies/create"), req, token)
	if err != nil {
		return err
	}

	env, envErr := api.ParseEnvelope(body)
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		var m MovieDTO
		if envErr == nil {
			_ = json.Unmarshal(env.Data, &m)
		}
		fmt.Fprintf(Out, "Added %q (%s)\n", m.Title, m.ID)
		return nil
	case http.StatusBadRequest:
		if envErr == nil && env.Error != "" {
			return fmt.Errorf("validation failed: %s", env.Error)
		}
		return errors.New("validation failed")
	case http.StatusConflict:
		return errors.New("movie with this title already exists")
	case http.StatusUnauthorized:
		return errors.New("session expired, login again")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(movieAddCmd{}) }
