// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/loader"
	"github.com/tomtom215/cinerec/internal/recommend"
)

// movieRef names a movie to predict, which may be absent from the catalog.
type movieRef struct {
	name string
	year int
}

func parsePredictRefs(refs []string) ([]movieRef, error) {
	out := make([]movieRef, 0, len(refs))
	for _, ref := range refs {
		name, year, err := loader.ParseMovieRef(ref)
		if err != nil {
			return nil, fmt.Errorf("report.predict: %w", err)
		}
		out = append(out, movieRef{name: name, year: year})
	}
	return out, nil
}

// selectUsers keeps the named users in the order given. An empty filter
// keeps everyone.
func selectUsers(users []*recommend.User, names []string, logger zerolog.Logger) []*recommend.User {
	if len(names) == 0 {
		return users
	}

	byName := make(map[string]*recommend.User, len(users))
	for _, u := range users {
		byName[u.Username()] = u
	}

	selected := make([]*recommend.User, 0, len(names))
	for _, name := range names {
		u, ok := byName[name]
		if !ok {
			logger.Warn().Str("user", name).Msg("Requested user not in dataset")
			continue
		}
		selected = append(selected, u)
	}
	return selected
}

type reporter struct {
	out       io.Writer
	neighbors int
	predict   []movieRef
}

// write prints one line per user:
//
//	alice: content=Titanic (1997) cf=Twilight (2008)
//
// followed by an indented line per requested prediction. Failures are
// reported inline so one user's degenerate ratings do not hide the others.
func (r *reporter) write(ctx context.Context, users []*recommend.User) error {
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := u.RecommendationByContent()
		contentText := result(content.String(), err)

		cf, err := u.RecommendationByCF(r.neighbors)
		cfText := result(cf.String(), err)

		if _, err := fmt.Fprintf(r.out, "%s: content=%s cf=%s\n", u.Username(), contentText, cfText); err != nil {
			return err
		}

		for _, ref := range r.predict {
			score, err := u.PredictionScoreForMovie(ref.name, ref.year, r.neighbors)
			text := result(strconv.FormatFloat(score, 'f', 4, 64), err)
			if _, err := fmt.Fprintf(r.out, "  predict %s=%s\n", recommend.NewMovie(ref.name, ref.year), text); err != nil {
				return err
			}
		}
	}
	return nil
}

func result(value string, err error) string {
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return value
}
