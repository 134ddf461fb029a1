// internal/words/sources.go
//
// Backing word-list sources. All of them produce raw lines; Load owns
// filtering and normalization. Three real sources are provided:
//
//   - Embedded: the compiled-in default dictionary (assets/words.txt).
//   - File:     a line-delimited text file, # comments allowed.
//   - SQLite:   a `words(word TEXT)` table, for installs that keep the
//     dictionary in a database.
//
// Static is a literal source for tests and custom wiring.

package words

import (
	"bufio"
	"database/sql"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/emacsmirror/wordel/assets"
)

// Source yields the raw backing word list, one word per entry.
type Source interface {
	Words() ([]string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() ([]string, error)

func (f SourceFunc) Words() ([]string, error) { return f() }

// Embedded returns the compiled-in default dictionary.
func Embedded() Source {
	return SourceFunc(assets.WordList)
}

// File returns a source reading one word per line from path.
// Blank lines and lines starting with # are skipped.
func File(path string) Source {
	return SourceFunc(func() ([]string, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		var out []string
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			w := strings.TrimSpace(sc.Text())
			if w == "" || strings.HasPrefix(w, "#") {
				continue
			}
			out = append(out, w)
		}
		return out, sc.Err()
	})
}

// SQLite returns a source reading every row of the words table in the
// database at path. The file must already exist; a missing dictionary
// database is a configuration error, not something to create empty.
func SQLite(path string) Source {
	return SourceFunc(func() ([]string, error) {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
		if err != nil {
			return nil, err
		}
		defer db.Close()

		rows, err := db.Query(`SELECT word FROM words`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var out []string
		for rows.Next() {
			var w string
			if err := rows.Scan(&w); err != nil {
				return nil, err
			}
			out = append(out, w)
		}
		return out, rows.Err()
	})
}

// Static returns a fixed in-memory source.
func Static(list ...string) Source {
	return SourceFunc(func() ([]string, error) { return list, nil })
}
