package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"pholio/file_io"
	L "pholio/logger"
	"strings"
	"time"
)

type Config struct {
	ApiBaseUrl string `json:"api_base_url"`
	// 0 disables the client-side timeout; a hung request then hangs until
	// the command context is cancelled.
	TimeoutSeconds int `json:"timeout_seconds"`
}

var config Config
var configPath string

func Parse(configPathArg string) error {
	file, err := os.Open(configPathArg)
	if err != nil {
		return fmt.Errorf("config: could not open config file for reading")
	}
	defer file.Close()
	decoder := json.NewDecoder(file)
	err = decoder.Decode(&config)
	if err != nil {
		return fmt.Errorf("config: malformed config %s: %w", configPathArg, err)
	}
	err = validate(&config)
	if err != nil {
		return fmt.Errorf("config: could not validate config: %w", err)
	}

	configPath, err = filepath.Abs(configPathArg)
	if err != nil {
		return err
	}
	return nil
}

func Get() *Config {
	return &config
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func GetDefaultConfigDir() (string, error) {
	configDir, configDirError := os.UserConfigDir()
	homeDir, homeDirError := os.UserHomeDir()
	if configDirError != nil && homeDirError != nil {
		return "", fmt.Errorf("config: cannot find config dir: Config: %w, Home: %w", configDirError, homeDirError)
	}
	var dir string
	if configDirError == nil {
		dir = configDir
	} else {
		dir = homeDir
	}
	dir, err := filepath.Abs(filepath.Join(dir, "pholio"))
	if err != nil {
		return "", err
	}
	L.Debug(fmt.Sprintf("Using config directory: %s", dir))
	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}
	return dir, nil
}

func GetDefaultConfigPath() (string, error) {
	configDir, err := GetDefaultConfigDir()
	if err != nil {
		return "", err
	}
	configFilePath := filepath.Join(configDir, "config.json")
	if !file_io.Exists(configFilePath) {
		_, err = file_io.WriteToFile(configFilePath, []byte(DumpDefaultConfig()), file_io.WRITE_OVERWRITE)
	}
	if err != nil {
		return "", err
	}
	return configFilePath, err
}

func GetConfigPath() string {
	return configPath
}

func (c *Config) ToJson() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DumpDefaultConfig() string {
	defaultConfig := Config{
		ApiBaseUrl:     "http://localhost:8000",
		TimeoutSeconds: 0,
	}
	configStr, err := defaultConfig.ToJson()
	if err != nil {
		return ""
	}
	return configStr
}

func validate(c *Config) error {
	if c.ApiBaseUrl == "" {
		return fmt.Errorf("api_base_url is required")
	}
	u, err := url.Parse(c.ApiBaseUrl)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_base_url is not a valid url: %s", c.ApiBaseUrl)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_base_url must be http or https: %s", c.ApiBaseUrl)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative")
	}
	// trailing slashes break path joins against the REST surface
	c.ApiBaseUrl = strings.TrimRight(c.ApiBaseUrl, "/")
	return nil
}
