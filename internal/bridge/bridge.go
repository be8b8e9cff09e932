package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/tvdeck/internal/catalog"
)

// Launcher opens an installed app by package identifier.
type Launcher interface {
	OpenApp(ctx context.Context, pkg string) error
}

// Launcher kinds accepted by New.
const (
	KindNone = ""
	KindHTTP = "http"
	KindADB  = "adb"
)

// ErrUnknownKind is returned by New for an unsupported launcher kind.
var ErrUnknownKind = errors.New("unknown bridge kind")

// New builds the launcher for kind. KindNone returns a nil Launcher and no
// error.
func New(kind, address, device string) (Launcher, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindNone:
		return nil, nil
	case KindHTTP:
		c, err := NewClient(address)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindADB:
		return NewADB(device), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Outcome reports what Activate did.
type Outcome int

const (
	Launched Outcome = iota
	NoBridge
	NoPackage
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Launched:
		return "launched"
	case NoBridge:
		return "no bridge"
	case NoPackage:
		return "no package"
	default:
		return "failed"
	}
}

// Activate opens app through l. A missing launcher or package is logged and
// reported in the Outcome, never returned as an error.
func Activate(ctx context.Context, l Launcher, app catalog.App, log logrus.FieldLogger) Outcome {
	fields := logrus.Fields{"app": app.ID, "package": app.Package}
	switch {
	case l == nil:
		log.WithFields(fields).Warn("no launch bridge available")
		return NoBridge
	case !app.Launchable():
		log.WithFields(fields).Warn("app has no package name")
		return NoPackage
	}
	if err := l.OpenApp(ctx, strings.TrimSpace(app.Package)); err != nil {
		log.WithFields(fields).WithError(err).Warn("open app failed")
		return Failed
	}
	log.WithFields(fields).Info("app launched")
	return Launched
}
