package team

import "github.com/cockroachdb/errors"

// Team is a basketball club registered in a league.
type Team struct {
	ID       int64
	LeagueID string
	Name     string
	Short    string
	LogoURL  string
}

func (t Team) Validate() error {
	switch {
	case t.ID <= 0:
		return errors.Newf("team id must be > 0, got %d", t.ID)
	case t.LeagueID == "":
		return errors.Newf("team %d: league id is required", t.ID)
	case t.Name == "":
		return errors.Newf("team %d: name is required", t.ID)
	}
	return nil
}
