package kernel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const inventoryHeader = "package,pkg_version,size,installed_size,origins,active,installed,downloaded\n"

func TestReadInventory(t *testing.T) {
	input := inventoryHeader +
		"linux-image-4.8.0-46-generic,4.8.0-46.49,23000000,68000000,Ubuntu (xenial-updates),false,true,true\n" +
		"linux-image-4.10.0-28-generic,4.10.0-28.32,24000000,70000000,Ubuntu (zesty),true,true,true\n" +
		"linux-image-generic,4.10.0.28.30,4000,12000,Ubuntu (zesty),false,true,false\n" +
		"linux-image-4.4.0-21-generic,4.4.0-21.37,22000000,65000000,Ubuntu (xenial),false,false,false\n"

	kernels, err := ReadInventory(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []Kernel{
		{
			Package: "linux-image-4.10.0-28-generic", PkgVersion: "4.10.0-28.32",
			Version: "4.10.0.28", Group: "4.10",
			Size: 24000000, InstalledSize: 70000000, Origins: "Ubuntu (zesty)",
			Active: true, Installed: true, Downloaded: true,
		},
		{
			Package: "linux-image-4.8.0-46-generic", PkgVersion: "4.8.0-46.49",
			Version: "4.8.0.46", Group: "4.8",
			Size: 23000000, InstalledSize: 68000000, Origins: "Ubuntu (xenial-updates)",
			Installed: true, Downloaded: true,
		},
		{
			Package: "linux-image-4.4.0-21-generic", PkgVersion: "4.4.0-21.37",
			Version: "4.4.0.21", Group: "4.4",
			Size: 22000000, InstalledSize: 65000000, Origins: "Ubuntu (xenial)",
		},
	}

	// Meta-package dropped, remaining sorted by version descending.
	if diff := cmp.Diff(want, kernels); diff != "" {
		t.Errorf("inventory mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInventoryEmpty(t *testing.T) {
	kernels, err := ReadInventory(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(kernels) != 0 {
		t.Errorf("expected no kernels, got %d", len(kernels))
	}
}

func TestReadInventoryHeaderOnly(t *testing.T) {
	kernels, err := ReadInventory(strings.NewReader(inventoryHeader))
	if err != nil {
		t.Fatal(err)
	}
	if len(kernels) != 0 {
		t.Errorf("expected no kernels, got %d", len(kernels))
	}
}

func TestReadInventoryBadFlag(t *testing.T) {
	input := inventoryHeader +
		"linux-image-4.8.0-46-generic,4.8.0-46.49,0,0,Ubuntu,maybe,true,true\n"
	if _, err := ReadInventory(strings.NewReader(input)); err == nil {
		t.Error("expected error for unparseable flag value")
	}
}

func TestReadInventoryEmptyOptionalColumns(t *testing.T) {
	input := inventoryHeader +
		"linux-image-4.8.0-46-generic,,,,,,,\n"
	kernels, err := ReadInventory(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(kernels) != 1 {
		t.Fatalf("expected 1 kernel, got %d", len(kernels))
	}
	k := kernels[0]
	if k.Size != 0 || k.Active || k.Installed || k.Downloaded {
		t.Errorf("empty columns should default to zero values: %+v", k)
	}
}

func TestLoadInventoryMissing(t *testing.T) {
	if _, err := LoadInventory("/nonexistent/inventory.csv"); err == nil {
		t.Error("expected error for missing inventory file")
	}
}
