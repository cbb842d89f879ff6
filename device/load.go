package device

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/fastcat/hellonet/log"
)

// ConfigFileName is the name of the dump file inside each device folder
const ConfigFileName = "config.dump"

// ErrNoConfigDir is returned, wrapped, by LoadDir when the configuration
// directory does not exist. The Set returned with it is empty but usable.
var ErrNoConfigDir = errors.New("configuration directory not found")

// LoadDir loads every device found under dir. Each subdirectory holding a
// ConfigFileName is one device, whose id is the subdirectory name. Entries
// without a dump are skipped, as are dumps that cannot be read, which are
// logged.
func LoadDir(dir string) (*Set, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSet(), errors.Wrapf(ErrNoConfigDir, "%s", dir)
		}
		return NewSet(), errors.Wrapf(err, "unable to inspect configuration directory %s", dir)
	}
	if !info.IsDir() {
		return NewSet(), errors.Wrapf(ErrNoConfigDir, "%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return NewSet(), errors.Wrapf(err, "unable to list configuration directory %s", dir)
	}

	devices := make([]*Device, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name(), ConfigFileName)
		if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		d, err := loadFile(entry.Name(), path)
		if err != nil {
			log.Error("Skipping device %s: %v", entry.Name(), err)
			continue
		}
		log.Debug("Loaded device %s with %d interfaces", d, len(d.Interfaces))
		devices = append(devices, d)
	}

	return NewSet(devices...), nil
}

func loadFile(id, path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()
	return Parse(id, f)
}
