package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	props      = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)
)

// init loads application properties from YAML. A missing properties file is
// not fatal so that packages importing resource stay usable under `go test`.
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	Init(value)
}

func Init(filepath string) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("properties not loaded from %s: %v", filepath, err)
		return
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	if err := props.MergeConfigMap(resolved); err != nil {
		log.Fatalf("Fail to merge properties: %v", err)
	}
}

// parsePropertiesMap walks the YAML tree, flattening keys and resolving
// ${ENV_VAR:default} placeholders in string values.
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
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	return defaultValue
}

// Set overrides a property value. Intended for tests.
func Set(key string, value any) {
	props.Set(key, value)
}

func Get(key string) any {
	return props.Get(key)
}

func GetString(key string) string {
	return props.GetString(key)
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

func GetInt(key string) int {
	return props.GetInt(key)
}

func GetInt64(key string) int64 {
	return props.GetInt64(key)
}

func GetStringSlice(key string) []string {
	return props.GetStringSlice(key)
}
