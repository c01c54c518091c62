package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 5000
)

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// Load reads HOST, PORT and ENV, after merging the given dotenv files (".env" when none).
// A missing dotenv file is not an error; variables already set win over the file.
func Load(files ...string) (ServerConfig, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ServerConfig{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := ServerConfig{
		Host: DefaultHost,
		Port: DefaultPort,
		Env:  os.Getenv("ENV"),
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Host = host
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return ServerConfig{}, fmt.Errorf("invalid PORT %q", raw)
		}
		cfg.Port = port
	}

	return cfg, nil
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
