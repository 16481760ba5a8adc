package unidrive

import (
	"context"
	"fmt"
	"strings"

	"github.com/deotya/unidrive/data"
	"github.com/deotya/unidrive/drives"
	"github.com/deotya/unidrive/log"
)

// Translator converts between virtual addresses and native volume-rooted
// paths. It holds no mutable state and is safe for concurrent use; drive
// existence is checked against the enumerator on every call, never cached.
type Translator struct {
	drives drives.Enumerator
	logger *log.Logger
}

func NewTranslator(enumerator drives.Enumerator, logger *log.Logger) *Translator {
	if logger == nil {
		logger = log.New("unidrive", log.Error, "", false)
	}

	return &Translator{
		drives: enumerator,
		logger: logger.Named("translate"),
	}
}

// Resolve maps the raw address a client sent onto a native path, using the
// session's current native directory as context for relative addressing.
//
// Root-relative addressing is the only addressing mode: a leading slash is
// stripped and there is no escape from the unified namespace. The whole-string
// `..` token is a navigation directive crossing sentinel/drive-root/nested
// boundaries; embedded `.` and `..` components are ordinary normalization,
// clamped at the volume root.
func (t *Translator) Resolve(ctx context.Context, incoming string, current data.NativePath) (data.NativePath, error) {
	if incoming == "/" {
		return data.Sentinel, nil
	}

	trimmed := strings.TrimPrefix(incoming, "/")

	if trimmed == ".." {
		return t.resolveParent(current), nil
	}

	if data.IsDriveToken(trimmed) {
		return t.resolveDrive(ctx, trimmed)
	}

	parts := strings.Split(trimmed, "/")
	if data.IsDriveToken(parts[0]) {
		// Drive-letter syntax wins over a same-length directory name; an
		// unknown letter fails here instead of falling through to relative
		// interpretation.
		root, err := t.resolveDrive(ctx, parts[0])
		if err != nil {
			return "", err
		}

		resolved, err := root.Join(parts[1:]...).Normalize()
		if err != nil {
			return "", err
		}

		t.logger.Debug("Resolved %q to %q", incoming, resolved)
		return resolved, nil
	}

	if !current.IsSentinel() {
		resolved, err := current.Join(parts...).Normalize()
		if err != nil {
			return "", err
		}

		t.logger.Debug("Resolved %q against %q to %q", incoming, current, resolved)
		return resolved, nil
	}

	return "", fmt.Errorf("%w: %q has no drive context", data.ErrInvalidPath, incoming)
}

// resolveParent handles the whole-string `..` directive: the root has no
// parent, one level above a drive root is the unified root, everything else
// strips the last native component.
func (t *Translator) resolveParent(current data.NativePath) data.NativePath {
	switch {
	case current.IsSentinel():
		return data.Sentinel
	case current.IsDriveRoot():
		return data.Sentinel
	default:
		return current.Parent()
	}
}

func (t *Translator) resolveDrive(ctx context.Context, token string) (data.NativePath, error) {
	letter, err := data.ParseDriveLetter(token)
	if err != nil {
		return "", err
	}

	if !t.drives.Exists(ctx, letter) {
		return "", fmt.Errorf("%w: %s", data.ErrDriveNotFound, letter)
	}

	return letter.Root(), nil
}

// Unresolve maps a native path back onto its virtual address. It is the left
// inverse of Resolve for every native path Resolve can produce.
func (t *Translator) Unresolve(native data.NativePath) (data.VirtualPath, error) {
	if native.IsSentinel() {
		return data.Root(), nil
	}

	normalized, err := native.Normalize()
	if err != nil {
		return data.VirtualPath{}, err
	}

	letter, err := normalized.Drive()
	if err != nil {
		return data.VirtualPath{}, err
	}

	segments := normalized.Segments()
	if len(segments) == 0 {
		return data.Drive(letter), nil
	}

	return data.Nested(letter, segments...), nil
}
