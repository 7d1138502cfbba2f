package testutil

import (
	"github.com/preston-bernstein/football-leagues/internal/domain/league"
)

// SampleLeagueJSON is a small league payload with one club missing its code and one missing its country.
const SampleLeagueJSON = `{
  "name": "Liga Test 2024",
  "clubs": [
    {"name": "Alpha FC", "code": "ALP", "country": "Spain"},
    {"name": "Beta CF", "country": "Spain"},
    {"name": "Gamma SD", "code": "GAM"}
  ]
}`

// SampleLeague returns SampleLeagueJSON parsed, payload included.
func SampleLeague() league.Document {
	doc, err := league.Unmarshal([]byte(SampleLeagueJSON))
	if err != nil {
		panic(err)
	}
	return doc
}
