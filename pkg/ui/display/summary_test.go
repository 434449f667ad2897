package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/assetgen/pkg/generator"
	"github.com/arthur-debert/assetgen/pkg/lang"
)

func TestNewSummary(t *testing.T) {
	result := &generator.Result{
		DryRun:      true,
		Files:       []string{"/a/ns/blockstates/stone.json"},
		LangCreated: []string{"/a/ns/lang/en_us.json"},
		Conflicts:   []generator.Conflict{{Namespace: "bad", Path: "/a/bad/lang"}},
		Warnings:    []generator.Warning{{ID: "ns:stone", Tag: "fence", Message: `No template keyword found: "fence"`}},
		Namespaces:  []*generator.NamespaceStats{{Namespace: "ns", Definitions: 1, Files: 1, Keys: 1}},
	}
	updates := []lang.FileUpdate{
		{Namespace: "ns", Path: "/a/ns/lang/en_us.json", Added: []string{"block.ns.stone"}},
		{Namespace: "ns", Path: "/a/ns/lang/fr_fr.json"},
	}

	s := NewSummary(result, updates)

	assert.True(t, s.DryRun)
	assert.Equal(t, result.Files, s.Files)
	assert.Equal(t, []string{"/a/bad/lang is not a directory!"}, s.Conflicts)
	assert.Equal(t, []string{`No template keyword found: "fence"`}, s.Warnings)
	assert.Equal(t, []NamespaceSummary{{Namespace: "ns", Definitions: 1, Files: 1, Keys: 1}}, s.Namespaces)
	assert.Equal(t, "en_us.json", s.LangUpdates[0].File)
	assert.Equal(t, []string{}, s.LangUpdates[1].Added)
	assert.Equal(t, 1, s.KeysAdded())
	assert.True(t, s.HasProblems())
}

func TestNewSummaryNil(t *testing.T) {
	s := NewSummary(nil, nil)
	assert.NotNil(t, s.Files)
	assert.Zero(t, s.KeysAdded())
	assert.False(t, s.HasProblems())
}
