package acm86xx

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func writeBlob(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	test.That(t, os.WriteFile(filepath.Join(dir, name), data, 0o600), test.ShouldBeNil)
}

func TestLoadDSPConfigNamedBlob(t *testing.T) {
	chip := testChip()
	dir := t.TempDir()
	blob := []byte{0x00, 0x00, 0x04, 0x02}
	writeBlob(t, dir, "acm86xxtest_dsp_flat.bin", blob)

	data, err := loadDSPConfig(chip, dir, "flat")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, data, test.ShouldResemble, blob)
}

func TestLoadDSPConfigDefaultName(t *testing.T) {
	chip := testChip()
	dir := t.TempDir()
	blob := []byte{0x60, 0x01}
	writeBlob(t, dir, "acm86xxtest_dsp_default.bin", blob)

	// An empty name selects the "default" blob.
	data, err := loadDSPConfig(chip, dir, "")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, data, test.ShouldResemble, blob)
}

func TestLoadDSPConfigMalformed(t *testing.T) {
	chip := testChip()

	for _, blob := range [][]byte{{}, {0x01}, {0x01, 0x02, 0x03}} {
		dir := t.TempDir()
		writeBlob(t, dir, "acm86xxtest_dsp_default.bin", blob)

		_, err := loadDSPConfig(chip, dir, "")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "register/value pairs")
	}
}

func TestLoadDSPConfigMissingBlobPolicies(t *testing.T) {
	// Chips without a compiled-in default treat a missing blob as fatal.
	required := testChip()
	required.RequireDSPConfig = true
	required.DefaultDSPConfig = nil
	_, err := loadDSPConfig(required, t.TempDir(), "flat")
	test.That(t, err, test.ShouldNotBeNil)

	// Others silently fall back to the compiled-in default.
	fallback := testChip()
	data, err := loadDSPConfig(fallback, t.TempDir(), "flat")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, data, test.ShouldResemble, fallback.DefaultDSPConfig)
}

func TestValidateDSPConfig(t *testing.T) {
	test.That(t, validateDSPConfig([]byte{0x00, 0x01}), test.ShouldBeNil)
	test.That(t, validateDSPConfig([]byte{0x00, 0x01, 0x02, 0x03}), test.ShouldBeNil)
	test.That(t, validateDSPConfig(nil), test.ShouldNotBeNil)
	test.That(t, validateDSPConfig([]byte{0x00}), test.ShouldNotBeNil)
	test.That(t, validateDSPConfig([]byte{0x00, 0x01, 0x02}), test.ShouldNotBeNil)
}
