package bridge

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// runFunc executes a command and returns its combined output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// ADB launches apps with `adb shell monkey`, which starts the package's
// launcher activity.
type ADB struct {
	Binary string // defaults to "adb"
	Device string // adb serial; empty uses the only attached device

	run runFunc
}

var _ Launcher = (*ADB)(nil)

// NewADB returns an ADB launcher for device.
func NewADB(device string) *ADB {
	return &ADB{Binary: "adb", Device: strings.TrimSpace(device), run: execRun}
}

// OpenApp implements Launcher.
func (a *ADB) OpenApp(ctx context.Context, pkg string) error {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return fmt.Errorf("package required")
	}
	bin := a.Binary
	if bin == "" {
		bin = "adb"
	}
	run := a.run
	if run == nil {
		run = execRun
	}

	out, err := run(ctx, bin, a.args(pkg)...)
	if err != nil {
		return fmt.Errorf("adb open %s: %w: %s", pkg, err, strings.TrimSpace(string(out)))
	}
	// monkey exits 0 even when the package is missing.
	if strings.Contains(string(out), "No activities found") {
		return fmt.Errorf("adb open %s: no launchable activity", pkg)
	}
	return nil
}

func (a *ADB) args(pkg string) []string {
	var args []string
	if a.Device != "" {
		args = append(args, "-s", a.Device)
	}
	return append(args, "shell", "monkey", "-p", pkg, "-c", "android.intent.category.LAUNCHER", "1")
}
