package dekoda

import (
	"sync"

	j "github.com/goccy/go-json"
)

// Driver converts raw document bytes into a Value via a pluggable SPI. A
// driver reports false on any syntax error; dekoda never inspects
// driver-internal diagnostics, so a failed parse always surfaces as the fixed
// "Nothing" outcome. The default implementation is based on goccy/go-json and
// may be swapped with SetDriver (see source/yaml for a YAML-backed one).
type Driver interface {
	Parse(data []byte) (Value, bool)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = gojsonDriver{}
)

// SetDriver replaces the global parser driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = gojsonDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// ParseText parses a raw document through the current driver. A driver miss
// (malformed input) becomes the fixed failure "Nothing" via FromOptional.
func ParseText(text string) Outcome[Value] {
	return ParseBytes([]byte(text))
}

// ParseBytes is ParseText for a byte slice.
func ParseBytes(data []byte) Outcome[Value] {
	return FromOptional(getDriver().Parse(data))
}

// gojsonDriver wraps the goccy/go-json implementation.
type gojsonDriver struct{}

func (gojsonDriver) Parse(data []byte) (Value, bool) {
	var decoded any
	if err := j.Unmarshal(data, &decoded); err != nil {
		return Value{}, false
	}
	return ValueFromAny(decoded)
}

func (gojsonDriver) Name() string { return "go-json" }
