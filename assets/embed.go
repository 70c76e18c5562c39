// Package assets embeds the static game data shipped with the server:
// word lists, the crossword catalog, fallback reward media and SQL migrations.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed wordle_answers.txt hangman_words.txt puzzles.yaml fallback_media.yaml sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// WordleAnswers returns the embedded Wordle answer list (uppercase).
func WordleAnswers() ([]string, error) {
	return readLines("wordle_answers.txt")
}

// HangmanWords returns the embedded Hangman word list (uppercase).
func HangmanWords() ([]string, error) {
	return readLines("hangman_words.txt")
}

// Puzzles returns the raw crossword catalog YAML.
func Puzzles() ([]byte, error) {
	return FS.ReadFile("puzzles.yaml")
}

// FallbackMedia returns the raw fallback reward media YAML.
func FallbackMedia() ([]byte, error) {
	return FS.ReadFile("fallback_media.yaml")
}

// Migrations returns the embedded SQL migration directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// "sql" is a literal embedded directory; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
