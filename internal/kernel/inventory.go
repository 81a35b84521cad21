package kernel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Inventory CSV column indexes.
// Format: package,pkg_version,size,installed_size,origins,active,installed,downloaded
const (
	colPackage = iota
	colPkgVersion
	colSize
	colInstalledSize
	colOrigins
	colActive
	colInstalled
	colDownloaded
	numColumns
)

// LoadInventory reads a kernel inventory CSV from the given path.
func LoadInventory(path string) ([]Kernel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory: %w", err)
	}
	defer func() { _ = f.Close() }()

	kernels, err := ReadInventory(f)
	if err != nil {
		return nil, fmt.Errorf("read inventory %s: %w", path, err)
	}
	return kernels, nil
}

// ReadInventory parses inventory records and returns kernels sorted by
// version, descending. Records whose package name does not reduce to a
// concrete three-component kernel version are skipped (meta-packages).
func ReadInventory(reader io.Reader) ([]Kernel, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = numColumns

	// Skip header
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var kernels []Kernel
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		k, err := parseRecord(record)
		if err != nil {
			return nil, err
		}

		version := StripVersion(k.Package)
		group, ok := MajorVersion(version)
		if !ok {
			continue
		}
		k.Version = version
		k.Group = group

		kernels = append(kernels, k)
	}

	sort.SliceStable(kernels, func(i, j int) bool {
		return Compare(kernels[i].Version, kernels[j].Version) > 0
	})
	return kernels, nil
}

func parseRecord(record []string) (Kernel, error) {
	k := Kernel{
		Package:    record[colPackage],
		PkgVersion: record[colPkgVersion],
		Origins:    record[colOrigins],
	}

	var err error
	if k.Size, err = parseSize(record[colSize]); err != nil {
		return k, fmt.Errorf("%s: size: %w", k.Package, err)
	}
	if k.InstalledSize, err = parseSize(record[colInstalledSize]); err != nil {
		return k, fmt.Errorf("%s: installed_size: %w", k.Package, err)
	}
	if k.Active, err = parseFlag(record[colActive]); err != nil {
		return k, fmt.Errorf("%s: active: %w", k.Package, err)
	}
	if k.Installed, err = parseFlag(record[colInstalled]); err != nil {
		return k, fmt.Errorf("%s: installed: %w", k.Package, err)
	}
	if k.Downloaded, err = parseFlag(record[colDownloaded]); err != nil {
		return k, fmt.Errorf("%s: downloaded: %w", k.Package, err)
	}
	return k, nil
}

func parseSize(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
