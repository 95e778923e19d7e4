package env

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"io/fs"
)

// LoadFile exports the variables declared in a dotenv file. Variables already present in the environment win, and a
// missing file is not an error.
func LoadFile(log *zap.SugaredLogger, path string) error {
	err := godotenv.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debugw("config", "file", path, "status", "not found")
		return nil
	case err != nil:
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	log.Infow("config", "file", path, "status", "loaded")
	return nil
}
