// Package proof attaches a structured certificate to each deduction the
// solver reports, so a caller can render or verify a step without parsing
// its free-text explanation. A certificate is a tagged union: the Kind
// field says which of the Basic/Fish/ALS/AIC/Uniqueness/Forcing/Backtracking
// variants is populated, and every variant is built from the same
// core.Move shape every technique detector already returns.
package proof

import (
	"strings"

	"github.com/humansolve/sudoku/internal/core"
)

// Kind names one family of structural evidence a Certificate can carry.
type Kind string

const (
	KindBasic        Kind = "basic"        // singles, naked/hidden subsets, intersections
	KindFish         Kind = "fish"         // X-Wing, Swordfish, Jellyfish, finned variants
	KindALS          Kind = "als"          // ALS-XZ, ALS-XY-Wing, ALS-XY-Chain, Sue de Coq, Death Blossom
	KindAIC          Kind = "aic"          // X-Chain, XY-Chain, W-Wing, WXYZ-Wing, grouped X-Cycles, AIC
	KindUniqueness   Kind = "uniqueness"   // Unique Rectangle variants, BUG
	KindForcing      Kind = "forcing"      // digit/cell/unit forcing chains, 3D Medusa
	KindBacktracking Kind = "backtracking" // last-resort trial and error
)

// familyBySlug classifies each registered technique slug into the
// certificate family its evidence shape belongs to. Anything not listed
// here falls back to KindBasic.
var familyBySlug = map[string]Kind{
	"x-wing":             KindFish,
	"swordfish":          KindFish,
	"jellyfish":          KindFish,
	"finned-x-wing":       KindFish,
	"finned-swordfish":    KindFish,
	"skyscraper":          KindFish,
	"empty-rectangle":     KindFish,

	"als-xz":        KindALS,
	"als-xy-wing":   KindALS,
	"als-xy-chain":  KindALS,
	"sue-de-coq":    KindALS,
	"death-blossom": KindALS,

	"xy-wing":           KindAIC,
	"xyz-wing":          KindAIC,
	"w-wing":            KindAIC,
	"wxyz-wing":         KindAIC,
	"x-chain":           KindAIC,
	"xy-chain":          KindAIC,
	"grouped-x-cycles":  KindAIC,
	"aic":               KindAIC,
	"simple-coloring":   KindAIC,

	"unique-rectangle":         KindUniqueness,
	"unique-rectangle-type-2":  KindUniqueness,
	"unique-rectangle-type-3":  KindUniqueness,
	"unique-rectangle-type-4":  KindUniqueness,
	"avoidable-rectangle":      KindUniqueness,
	"bug":                      KindUniqueness,

	"medusa-3d":           KindForcing,
	"digit-forcing-chain": KindForcing,
	"forcing-chain":       KindForcing,
}

// Certificate is the structural evidence behind one deduction. Exactly one
// of the Kind-named fields below is meaningful for any given Kind; the rest
// are zero values.
type Certificate struct {
	Kind Kind

	Basic        *BasicEvidence
	Fish         *FishEvidence
	ALS          *ALSEvidence
	AIC          *AICEvidence
	Uniqueness   *UniquenessEvidence
	Forcing      *ForcingEvidence
	Backtracking *BacktrackingEvidence
}

// BasicEvidence covers singles, subsets and intersections: a set of cells
// sharing a candidate pattern, and the eliminations or placement that follow.
type BasicEvidence struct {
	PatternCells []core.CellRef
	Digits       []int
}

// FishEvidence names the base and cover sectors of a fish pattern, plus any
// fin cells for finned variants.
type FishEvidence struct {
	Digit     int
	BaseCells []core.CellRef
	CoverSize int
	FinCells  []core.CellRef
}

// ALSEvidence records the almost-locked sets and the restricted common
// digit(s) that link them.
type ALSEvidence struct {
	SetCells      [][]core.CellRef
	RestrictedSet []int
}

// AICEvidence records a chain of strong/weak links as an ordered list of
// (cell, digit) nodes.
type AICEvidence struct {
	Nodes    []ChainNode
	LinkKind []string // "strong" or "weak" per link; FromMove leaves it empty
}

// ChainNode is one link endpoint in a chain-based certificate.
type ChainNode struct {
	Cell  core.CellRef
	Digit int
}

// UniquenessEvidence records the rectangle or loop a uniqueness argument
// hinges on, and which corner(s) carry the extra candidates that break it.
type UniquenessEvidence struct {
	RectangleCells []core.CellRef
	FloorDigits    []int
	ExtraCells     []core.CellRef
}

// ForcingEvidence records the trial assumption (start cell and digit).
// FromMove leaves BranchCount at zero.
type ForcingEvidence struct {
	StartCell   core.CellRef
	StartDigit  int
	BranchCount int
}

// BacktrackingEvidence marks a step resolved only by search, not by any
// named human technique.
type BacktrackingEvidence struct {
	NodesExplored int
}

// FromMove derives a Certificate from a solved move and the slug of the
// technique that produced it. It reconstructs evidence from the move's
// existing Targets/Eliminations/Digit fields rather than requiring every
// detector to build a bespoke payload, so the roughly forty existing
// detector functions need no signature change to gain certificates.
func FromMove(slug string, move *core.Move) *Certificate {
	kind, ok := familyBySlug[slug]
	if !ok {
		kind = KindBasic
	}

	digits := []int{}
	if move.Digit != 0 {
		digits = append(digits, move.Digit)
	}

	switch kind {
	case KindFish:
		return &Certificate{
			Kind: KindFish,
			Fish: &FishEvidence{
				Digit:     move.Digit,
				BaseCells: move.Targets,
				CoverSize: fishCoverSize(slug),
			},
		}
	case KindALS:
		return &Certificate{
			Kind: KindALS,
			ALS: &ALSEvidence{
				SetCells:      [][]core.CellRef{move.Targets},
				RestrictedSet: digits,
			},
		}
	case KindAIC:
		nodes := make([]ChainNode, 0, len(move.Targets))
		for _, c := range move.Targets {
			nodes = append(nodes, ChainNode{Cell: c, Digit: move.Digit})
		}
		return &Certificate{
			Kind: KindAIC,
			AIC: &AICEvidence{
				Nodes: nodes,
			},
		}
	case KindUniqueness:
		extra := make([]core.CellRef, 0, len(move.Eliminations))
		for _, e := range move.Eliminations {
			extra = append(extra, core.CellRef{Row: e.Row, Col: e.Col})
		}
		return &Certificate{
			Kind: KindUniqueness,
			Uniqueness: &UniquenessEvidence{
				RectangleCells: move.Targets,
				FloorDigits:    digits,
				ExtraCells:     extra,
			},
		}
	case KindForcing:
		var start core.CellRef
		if len(move.Targets) > 0 {
			start = move.Targets[0]
		}
		return &Certificate{
			Kind: KindForcing,
			Forcing: &ForcingEvidence{
				StartCell:  start,
				StartDigit: move.Digit,
			},
		}
	default:
		return &Certificate{
			Kind: KindBasic,
			Basic: &BasicEvidence{
				PatternCells: move.Targets,
				Digits:       digits,
			},
		}
	}
}

// Backtracking builds the certificate for a step resolved by search instead
// of by a named technique.
func Backtracking(nodesExplored int) *Certificate {
	return &Certificate{
		Kind:         KindBacktracking,
		Backtracking: &BacktrackingEvidence{NodesExplored: nodesExplored},
	}
}

func fishCoverSize(slug string) int {
	switch {
	case strings.HasPrefix(slug, "finned-x-wing"), slug == "x-wing", slug == "skyscraper", slug == "empty-rectangle":
		return 2
	case strings.HasPrefix(slug, "finned-swordfish"), slug == "swordfish":
		return 3
	case slug == "jellyfish":
		return 4
	default:
		return 0
	}
}
