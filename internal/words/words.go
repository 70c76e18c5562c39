// internal/words/words.go
//
// Provides word list management for the Wordle and Hangman engines.
//
// Responsibilities:
//   - Load the Wordle answer list and the Hangman word list from environment-provided
//     files or fall back to the embedded defaults in the assets package.
//   - Supply uniform random picks (crypto/rand) and simple lookups.
//
// Word Lists:
//   - "answers": Wordle solutions (exactly WordLength uppercase letters).
//   - "hangman": Hangman targets (any length ≥ 2, uppercase letters only).
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   HANGMAN_WORDS_FILE=/path/to/hangman.txt
//
// Initialization is run once (sync.Once). Pickers called before Init
// trigger it implicitly and fall back to a fixed word if loading failed.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/sachgames/assets"
	"github.com/robalobadob/sachgames/internal/config"
)

var (
	initOnce   sync.Once
	answers    []string            // Wordle answers
	answersSet map[string]struct{} // Wordle answers lookup
	hangman    []string            // Hangman words
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if either list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var err error
		answers, err = loadList(os.Getenv("WORDS_ANSWERS_FILE"), assets.WordleAnswers, isAnswerWord)
		if err != nil {
			initialErr = err
			return
		}
		hangman, err = loadList(os.Getenv("HANGMAN_WORDS_FILE"), assets.HangmanWords, isHangmanWord)
		if err != nil {
			initialErr = err
			return
		}
		answersSet = toSet(answers)

		switch {
		case len(answers) == 0:
			initialErr = errors.New("words: answers list is empty")
		case len(hangman) == 0:
			initialErr = errors.New("words: hangman list is empty")
		}
	})
	return initialErr
}

// loadList reads path when set, otherwise the embedded list, keeping only valid words.
func loadList(path string, embedded func() ([]string, error), valid func(string) bool) ([]string, error) {
	var raw []string
	var err error
	if path != "" {
		raw, err = readWordFile(path)
	} else {
		raw, err = embedded()
	}
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if valid(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// readWordFile loads one word per line from a file, uppercased and trimmed.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToUpper(sc.Text()))
		if w != "" && !strings.HasPrefix(w, "#") {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func isAnswerWord(w string) bool { return len(w) == config.WordLength && isAlpha(w) }

func isHangmanWord(w string) bool { return len(w) >= 2 && isAlpha(w) }

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// pick returns a uniformly random element of list, or def when list is empty.
func pick(list []string, def string) string {
	if len(list) == 0 {
		return def
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0]
	}
	return list[nBig.Int64()]
}

// RandomAnswer returns a random Wordle answer.
// If the list could not be loaded, falls back to "CRANE".
func RandomAnswer() string {
	_ = Init()
	return pick(answers, "CRANE")
}

// RandomHangmanWord returns a random Hangman target.
// If the list could not be loaded, falls back to "GOPHER".
func RandomHangmanWord() string {
	_ = Init()
	return pick(hangman, "GOPHER")
}

// IsAnswer reports whether w is a Wordle answer word.
func IsAnswer(w string) bool {
	_ = Init()
	_, ok := answersSet[strings.ToUpper(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, hangman).
func Stats() (answersCount int, hangmanCount int) {
	_ = Init()
	return len(answers), len(hangman)
}
