package encounter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/samdwyer/wildencounter/internal/entity"
	"github.com/samdwyer/wildencounter/internal/gamedata"
)

// ErrUnknownStrategy is returned for an unrecognised signature strategy name.
var ErrUnknownStrategy = errors.New("unknown signature strategy")

// Strategy names accepted by StrategyByName.
const (
	StrategyExact  = "exact"
	StrategyPrefix = "prefix"
)

// SignatureStrategy picks the species-linked move appended after Tackle.
type SignatureStrategy interface {
	Name() string
	Signature(species string, moves *gamedata.MoveCatalog) (entity.Move, bool)
}

// ExactStrategy matches a move whose catalog name equals the species name.
type ExactStrategy struct{}

func (ExactStrategy) Name() string { return StrategyExact }

func (ExactStrategy) Signature(species string, moves *gamedata.MoveCatalog) (entity.Move, bool) {
	def, ok := moves.Get(species)
	if !ok {
		return entity.Move{}, false
	}
	return def.ToMove(), true
}

// PrefixStrategy matches the first move, in catalog order, whose name starts
// with the species' first letter, ignoring case.
type PrefixStrategy struct{}

func (PrefixStrategy) Name() string { return StrategyPrefix }

func (PrefixStrategy) Signature(species string, moves *gamedata.MoveCatalog) (entity.Move, bool) {
	first, size := utf8.DecodeRuneInString(species)
	if size == 0 || first == utf8.RuneError {
		return entity.Move{}, false
	}

	fold := cases.Fold()
	prefix := fold.String(string(first))
	for _, def := range moves.All() {
		if strings.HasPrefix(fold.String(def.Name), prefix) {
			return def.ToMove(), true
		}
	}
	return entity.Move{}, false
}

// StrategyByName resolves a configured strategy name.
func StrategyByName(name string) (SignatureStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyExact:
		return ExactStrategy{}, nil
	case StrategyPrefix:
		return PrefixStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
