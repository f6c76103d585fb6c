package resource

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"

	"bdmep-api/configs"
	"bdmep-api/pkg/log"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from PROPERTIES_FILE_PATH or from the embedded defaults
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		if err := Init(value); err != nil {
			log.Fatalf("Fail to read properties: %v", err)
		}
		return
	}
	if err := Load(bytes.NewReader(configs.ApplicationYAML)); err != nil {
		log.Fatalf("Fail to read embedded properties: %v", err)
	}
}

// Init reads a YAML properties file, resolving ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read properties %s: %w", filepath, err)
	}
	apply(v)
	return nil
}

// Load reads YAML properties from r, resolving ${ENV:default} placeholders.
func Load(r io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("read properties: %w", err)
	}
	apply(v)
	return nil
}

func apply(v *viper.Viper) {
	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}

	mu.Lock()
	properties = next
	mu.Unlock()
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		case nil:
			result[fullKey] = ""
		default:
			log.Warnf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${ENV:default} placeholder in value
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

// Set overrides a single property. Intended for tests and command line overrides.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.Set(key, value)
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetInt32(key string) int32 {
	return current().GetInt32(key)
}
