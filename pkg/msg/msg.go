package msg

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// init loads the message catalog from YAML. A missing catalog is not fatal:
// GetMessage falls back to returning the key itself, which keeps tests and
// tooling runnable outside the deploy layout.
func init() {
	value, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	Init(value)
}

func Init(filepath string) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if messages == nil {
		messages = make(map[string]string)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("messages catalog not loaded from %s: %v", filepath, err)
		return
	}

	parseMessageMap("", v.AllSettings(), messages)
}

// parseMessageMap flattens the nested YAML structure into dotted keys.
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the catalog message for key, replacing {0}, {1}, ...
// placeholders with the given arguments. Unknown keys resolve to the key.
func GetMessage(key string, args ...interface{}) string {
	message, exists := messages[key]
	if !exists {
		return key
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, fmt.Sprintf("%v", arg))
	}

	return message
}
