package blacklist

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/kernelvet/kernelvet/internal/log"
)

//go:embed data/blacklist_default
var defaultBlacklist []byte

// Read parses blacklist directives from a reader and returns the resulting
// RuleSet in input order. Blank lines, comment lines and lines with an
// unknown leading token produce no rule; a KERNEL rule whose pattern does
// not compile is dropped with a warning. Read never fails on content.
func Read(r io.Reader) (*RuleSet, error) {
	logger := log.WithComponent("blacklist")
	rs := &RuleSet{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		keyword, rest, found := strings.Cut(trimmed, " ")
		if !found {
			keyword, rest, found = strings.Cut(trimmed, "\t")
		}
		pattern := strings.TrimSpace(rest)
		if !found || pattern == "" {
			logger.Debug().Str("line", line).Msg("ignoring directive without pattern")
			continue
		}

		switch Kind(strings.ToUpper(keyword)) {
		case KindGroup:
			rs.Rules = append(rs.Rules, Rule{Kind: KindGroup, Pattern: pattern})
		case KindKernel:
			re, err := compileAnchored(pattern)
			if err != nil {
				logger.Warn().Err(err).Str("pattern", pattern).Msg("dropping KERNEL rule with invalid pattern")
				continue
			}
			rs.Rules = append(rs.Rules, Rule{Kind: KindKernel, Pattern: pattern, re: re})
		default:
			logger.Debug().Str("token", keyword).Msg("ignoring unknown directive")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read blacklist: %w", err)
	}

	return rs, nil
}

// compileAnchored compiles pattern with match-from-start semantics: the
// expression must match a prefix of the subject, not the whole string and
// not a substring anywhere.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)`)
}

// LoadFile reads a RuleSet from the file at path. A missing file yields an
// empty RuleSet: no blacklist means nothing is suppressed.
func LoadFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RuleSet{}, nil
		}
		return nil, fmt.Errorf("open blacklist: %w", err)
	}
	defer func() { _ = f.Close() }()

	rs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("blacklist %s: %w", path, err)
	}
	return rs, nil
}

// DefaultRules returns the rules shipped with kernelvet.
func DefaultRules() *RuleSet {
	rs, err := Read(bytes.NewReader(defaultBlacklist))
	if err != nil {
		// Embedded data, an error here is a build defect.
		panic(fmt.Sprintf("parse embedded default blacklist: %v", err))
	}
	return rs
}

// LoadUser loads the user blacklist at path, seeding it from the embedded
// default on first use so users have a commented template to edit.
// Thereafter only the user file is read.
func LoadUser(path string) (*RuleSet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := seedUserFile(path); err != nil {
			logger := log.WithComponent("blacklist")
			logger.Warn().Err(err).Str("path", path).
				Msg("could not seed user blacklist, using built-in default")
			return DefaultRules(), nil
		}
	}
	return LoadFile(path)
}

// seedUserFile atomically writes the embedded default blacklist to path.
func seedUserFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := renameio.WriteFile(path, defaultBlacklist, 0o644); err != nil {
		return fmt.Errorf("write user blacklist: %w", err)
	}
	return nil
}
