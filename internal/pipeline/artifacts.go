package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/site-customizer/internal/types"
)

// Artifact file names written by WriteArtifacts
const (
	FileIndex    = "index.html"
	FileTheme    = "theme.css"
	FileSite     = "site.json"
	FileTokens   = "tokens.json"
	FileManifest = "manifest.json"
)

// ArtifactFile describes one written file
type ArtifactFile struct {
	Name  string `json:"name"`
	Bytes int    `json:"bytes"`
}

// Manifest describes one build on disk
type Manifest struct {
	BuildID       string              `json:"build_id"`
	Source        string              `json:"source"`
	BuiltAt       time.Time           `json:"built_at"`
	DarkMode      bool                `json:"dark_mode"`
	FallbackTheme bool                `json:"fallback_theme"`
	Sections      []types.SectionName `json:"sections"`
	Violations    int                 `json:"violations"`
	Files         []ArtifactFile      `json:"files"`
}

// WriteArtifacts writes the build outputs into outDir concurrently, then the manifest
func WriteArtifacts(ctx context.Context, outDir string, result *Result) (*Manifest, error) {
	if result == nil || result.Site == nil || result.Tokens == nil {
		return nil, fmt.Errorf("build result is incomplete")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	siteJSON, err := json.MarshalIndent(result.Site, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal site data: %w", err)
	}
	tokensJSON, err := json.MarshalIndent(result.Tokens, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tokens: %w", err)
	}

	outputs := map[string][]byte{
		FileIndex:  []byte(result.HTML),
		FileTheme:  []byte(result.CSS),
		FileSite:   siteJSON,
		FileTokens: tokensJSON,
	}

	var mu sync.Mutex
	files := make([]ArtifactFile, 0, len(outputs)+1)

	g, gctx := errgroup.WithContext(ctx)
	for name, data := range outputs {
		name, data := name, data
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(outDir, name), data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
			mu.Lock()
			files = append(files, ArtifactFile{Name: name, Bytes: len(data)})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	violations := 0
	if result.Violations != nil {
		violations = len(result.Violations.Violations)
	}

	manifest := &Manifest{
		BuildID:       result.BuildID.String(),
		Source:        result.SourcePath,
		BuiltAt:       result.BuiltAt,
		DarkMode:      result.Tokens.DarkMode(),
		FallbackTheme: result.UsedFallbackTheme(),
		Sections:      result.Site.Sections.ActiveNames(),
		Violations:    violations,
		Files:         files,
	}

	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, FileManifest), manifestJSON, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", FileManifest, err)
	}

	return manifest, nil
}
