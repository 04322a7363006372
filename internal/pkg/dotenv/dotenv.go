// Package dotenv подгружает .env и флаги командной строки в окружение до
// config.Load.
package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает files (по умолчанию .env). Отсутствующий файл не ошибка:
// loaded=false, и конфиг берется из окружения. Уже заданные переменные
// окружения не перезаписываются.
//
// Флаги переопределяют окружение:
//
//	-port           PORT
//	-draft-store    DRAFT_STORE_BACKEND
//	-draft-file     DRAFT_STORE_FILE_PATH
func Load(files ...string) (loaded bool, err error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	loaded, err = loadFiles(files)
	if err != nil {
		return false, err
	}

	if err := applyFlags(flag.CommandLine, os.Args[1:]); err != nil {
		return false, err
	}
	return loaded, nil
}

func loadFiles(files []string) (bool, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		_, err := os.Stat(f)
		switch {
		case err == nil:
			existing = append(existing, f)
		case !errors.Is(err, fs.ErrNotExist):
			return false, fmt.Errorf("stat %s: %w", f, err)
		}
	}
	if len(existing) == 0 {
		return false, nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return false, fmt.Errorf("load %v: %w", existing, err)
	}
	return true, nil
}

func applyFlags(flags *flag.FlagSet, args []string) error {
	overrides := map[string]*string{
		"PORT":                  flags.String("port", "", "Server port (overrides PORT environment variable)"),
		"DRAFT_STORE_BACKEND":   flags.String("draft-store", "", "Draft store backend: postgres or file"),
		"DRAFT_STORE_FILE_PATH": flags.String("draft-file", "", "Draft store JSON file for the file backend"),
	}

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for env, value := range overrides {
		if *value == "" {
			continue
		}
		if err := os.Setenv(env, *value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", env, err)
		}
	}
	return nil
}
