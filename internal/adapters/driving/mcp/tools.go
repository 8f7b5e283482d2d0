package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// ParseInput is the input schema for the parse tool.
type ParseInput struct {
	Symbol string `json:"symbol" jsonschema:"one IPA symbol, optionally with one diacritic"`
}

// ParseOutput is the output schema for the parse tool.
type ParseOutput struct {
	Input       string          `json:"input"`
	Recognized  bool            `json:"recognized"`
	Features    domain.Features `json:"features"`
	Description string          `json:"description"`
	Canonical   string          `json:"canonical"`
}

// RenderInput is the input schema for the render tool.
type RenderInput struct {
	Kind       string `json:"kind" jsonschema:"consonant or vowel"`
	VocalFolds string `json:"vocal_folds,omitempty" jsonschema:"vocal fold state, e.g. voiced or voiceless_aspirated"`
	Place      string `json:"place,omitempty" jsonschema:"consonant place of articulation, e.g. alveolar"`
	Manner     string `json:"manner,omitempty" jsonschema:"consonant manner of articulation, e.g. fricative"`
	Airstream  string `json:"airstream,omitempty" jsonschema:"consonant airstream (default pulmonic_egressive)"`
	Height     string `json:"height,omitempty" jsonschema:"vowel height, e.g. close_mid"`
	Backness   string `json:"backness,omitempty" jsonschema:"vowel backness (front, central or back)"`
	Rounding   string `json:"rounding,omitempty" jsonschema:"vowel rounding (rounded or unrounded)"`
}

// phonet builds the Phonet the input describes. Consonants default to
// the pulmonic airstream.
func (in RenderInput) phonet() (domain.Phonet, error) {
	f := domain.Features{
		Kind:       domain.Kind(in.Kind),
		VocalFolds: in.VocalFolds,
		Place:      in.Place,
		Manner:     in.Manner,
		Airstream:  in.Airstream,
		Height:     in.Height,
		Backness:   in.Backness,
		Rounding:   in.Rounding,
	}
	if f.Kind == domain.KindConsonant && f.Airstream == "" {
		f.Airstream = domain.PulmonicEgressive.String()
	}
	p, err := f.Phonet()
	if err != nil {
		return nil, fmt.Errorf("reading features: %w", err)
	}
	return p, nil
}

// RenderOutput is the output schema for the render tool.
type RenderOutput struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// TransformInput is the input schema for the transform tool.
type TransformInput struct {
	Symbol string `json:"symbol" jsonschema:"the IPA symbol to rewrite"`
	Rule   string `json:"rule" jsonschema:"voice, devoice or spirantize"`
	Strict bool   `json:"strict,omitempty" jsonschema:"fail on an unrecognized symbol instead of returning the empty set"`
}

// TransformOutput is the output schema for the transform tool.
type TransformOutput struct {
	Rule        string          `json:"rule"`
	Input       string          `json:"input"`
	Output      string          `json:"output"`
	Changed     bool            `json:"changed"`
	Features    domain.Features `json:"features"`
	Description string          `json:"description"`
}

// SymbolsInput is the input schema for the generalize tool.
type SymbolsInput struct {
	Symbols []string `json:"symbols" jsonschema:"IPA symbols to generalize"`
}

// ClassOutput is the output schema for the generalize tool.
type ClassOutput struct {
	Symbols     []string        `json:"symbols"`
	Pattern     domain.Features `json:"pattern"`
	Description string          `json:"description"`
}

// EnumerateInput is the input schema for the enumerate tool.
type EnumerateInput struct {
	Symbols   []string     `json:"symbols,omitempty" jsonschema:"IPA symbols whose natural class is enumerated"`
	Pattern   *RenderInput `json:"pattern,omitempty" jsonschema:"feature pattern to enumerate; empty features are unmarked"`
	Inventory string       `json:"inventory,omitempty" jsonschema:"only list sounds from this inventory (ID or name)"`
}

// EnumerateOutput is the output schema for the enumerate tool.
type EnumerateOutput struct {
	Description string        `json:"description"`
	Sounds      []SoundOutput `json:"sounds"`
	Count       int           `json:"count"`
}

// SoundOutput is one concrete sound.
type SoundOutput struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse",
		Description: "Read an IPA symbol into its phonetic features",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render",
		Description: "Write phonetic features as an IPA symbol, or ∅ when no symbol fits",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transform",
		Description: "Apply a sound change (voice, devoice or spirantize) to an IPA symbol",
	}, s.handleTransform)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generalize",
		Description: "Find the natural class shared by a list of IPA symbols",
	}, s.handleGeneralize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "enumerate",
		Description: "List every sound in the natural class of some symbols or a feature pattern",
	}, s.handleEnumerate)
}

// handleParse handles the parse tool invocation.
func (s *Server) handleParse(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	a := s.ports.Transcription.Analyze(input.Symbol)
	return nil, ParseOutput{
		Input:       a.Input,
		Recognized:  a.Recognized,
		Features:    domain.FeaturesOf(a.Phonet),
		Description: a.Description,
		Canonical:   a.Canonical,
	}, nil
}

// handleRender handles the render tool invocation.
func (s *Server) handleRender(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	p, err := input.phonet()
	if err != nil {
		return nil, RenderOutput{}, err
	}
	return nil, RenderOutput{
		Symbol:      s.ports.Transcription.Render(p),
		Description: p.String(),
	}, nil
}

// handleTransform handles the transform tool invocation.
func (s *Server) handleTransform(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TransformInput,
) (*mcp.CallToolResult, TransformOutput, error) {
	rule, err := domain.ParseRule(input.Rule)
	if err != nil {
		return nil, TransformOutput{}, err
	}

	t, err := s.ports.Transcription.Transform(input.Symbol, rule, domain.TransformOptions{Strict: input.Strict})
	if err != nil {
		return nil, TransformOutput{}, err
	}

	return nil, TransformOutput{
		Rule:        t.Rule.String(),
		Input:       t.Source.Input,
		Output:      t.Output,
		Changed:     t.Changed,
		Features:    domain.FeaturesOf(t.Result),
		Description: t.Result.String(),
	}, nil
}

// handleGeneralize handles the generalize tool invocation.
func (s *Server) handleGeneralize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SymbolsInput,
) (*mcp.CallToolResult, ClassOutput, error) {
	symbols := cleanSymbols(input.Symbols)
	if len(symbols) == 0 {
		return nil, ClassOutput{}, ErrEmptySymbols
	}

	class, err := s.ports.Features.Generalize(symbols)
	if err != nil {
		return nil, ClassOutput{}, err
	}

	return nil, ClassOutput{
		Symbols:     class.Symbols,
		Pattern:     domain.FeaturesOf(class.Pattern),
		Description: class.Description,
	}, nil
}

// handleEnumerate handles the enumerate tool invocation. Symbols take
// precedence over a pattern.
func (s *Server) handleEnumerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EnumerateInput,
) (*mcp.CallToolResult, EnumerateOutput, error) {
	pattern, err := s.enumeratePattern(input)
	if err != nil {
		return nil, EnumerateOutput{}, err
	}

	var members []domain.Realization
	if input.Inventory != "" {
		if s.ports.Inventory == nil {
			return nil, EnumerateOutput{}, fmt.Errorf("inventory %q: %w", input.Inventory, domain.ErrNotFound)
		}
		members, err = s.ports.Inventory.Filter(ctx, input.Inventory, pattern)
		if err != nil {
			return nil, EnumerateOutput{}, err
		}
	} else {
		members = s.ports.Features.Enumerate(pattern)
	}

	output := EnumerateOutput{
		Description: pattern.String(),
		Sounds:      make([]SoundOutput, len(members)),
		Count:       len(members),
	}
	for i, m := range members {
		output.Sounds[i] = SoundOutput{Symbol: m.Symbol, Description: m.Phonet.String()}
	}

	return nil, output, nil
}

func (s *Server) enumeratePattern(input EnumerateInput) (domain.Phonet, error) {
	if symbols := cleanSymbols(input.Symbols); len(symbols) > 0 {
		class, err := s.ports.Features.Generalize(symbols)
		if err != nil {
			return nil, err
		}
		return class.Pattern, nil
	}
	if input.Pattern != nil {
		return input.Pattern.phonet()
	}
	return nil, fmt.Errorf("%w: give symbols or a pattern", domain.ErrInvalidInput)
}

// cleanSymbols trims each symbol and drops empty ones.
func cleanSymbols(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if sym = strings.TrimSpace(sym); sym != "" {
			out = append(out, sym)
		}
	}
	return out
}
