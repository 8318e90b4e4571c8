package xmp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/beevik/etree"

	"p2mark/internal/failure"
	"p2mark/internal/guid"
	"p2mark/internal/logging"
	"p2mark/internal/marker"
	"p2mark/internal/xmltree"
)

const component = "xmp"

// Result describes a completed write.
type Result struct {
	Path    string
	Created bool
	Markers int
}

// Synthesizer creates or extends sidecar files.
type Synthesizer struct {
	ids    guid.Generator
	logger *slog.Logger
}

// NewSynthesizer returns a Synthesizer that mints marker identifiers with ids.
func NewSynthesizer(ids guid.Generator, logger *slog.Logger) *Synthesizer {
	if ids == nil {
		ids = guid.UUIDGenerator{}
	}
	return &Synthesizer{
		ids:    ids,
		logger: logging.NewComponentLogger(logger, component),
	}
}

// Write stores markers in the sidecar at path, creating the file if needed.
// An existing sidecar is only extended when its marker list is empty. With no
// markers Write touches nothing and returns a zero-count Result.
func (s *Synthesizer) Write(ctx context.Context, path string, markers []marker.Marker) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}
	if len(markers) == 0 {
		return Result{Path: path}, nil
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return s.merge(ctx, path, info, markers)
	case errors.Is(err, fs.ErrNotExist):
		return s.create(ctx, path, markers)
	default:
		return Result{}, failure.Wrap(failure.ErrDestinationRead, component, path, "cannot inspect XMP file", err)
	}
}

func (s *Synthesizer) create(ctx context.Context, path string, markers []marker.Marker) (Result, error) {
	items, err := s.buildMarkers(ctx, markers)
	if err != nil {
		return Result{}, err
	}

	skeleton := xmltree.NewChain(documentSkeleton)
	attach(skeleton.Tail(), items)

	doc := etree.NewDocument()
	doc.SetRoot(skeleton.Head())
	if err := save(doc, path, 0o644); err != nil {
		return Result{}, err
	}

	s.logger.Debug("xmp file created",
		logging.String(logging.FieldSidecar, path),
		logging.Int(logging.FieldMarkerCount, len(items)))
	return Result{Path: path, Created: true, Markers: len(items)}, nil
}

func (s *Synthesizer) merge(ctx context.Context, path string, info fs.FileInfo, markers []marker.Marker) (Result, error) {
	doc, list, err := loadMarkerList(path)
	if err != nil {
		return Result{}, err
	}

	// Existing markers may be an editor's work; leave the file alone.
	if len(list.ChildElements()) > 0 {
		return Result{}, failure.Wrap(failure.ErrConflict, component, path, "XMP file already has markers", nil)
	}
	if readOnly(info) {
		return Result{}, failure.Wrap(failure.ErrPermission, component, path, "XMP file is marked as read-only", nil)
	}

	items, err := s.buildMarkers(ctx, markers)
	if err != nil {
		return Result{}, err
	}
	attach(list, items)

	if err := save(doc, path, info.Mode().Perm()); err != nil {
		return Result{}, err
	}

	s.logger.Debug("xmp file extended",
		logging.String(logging.FieldSidecar, path),
		logging.Int(logging.FieldMarkerCount, len(items)))
	return Result{Path: path, Markers: len(items)}, nil
}

// buildMarkers assembles one detached chain per marker. Nothing is attached
// until every identifier has been minted.
func (s *Synthesizer) buildMarkers(ctx context.Context, markers []marker.Marker) ([]*etree.Element, error) {
	items := make([]*etree.Element, 0, len(markers))
	for _, m := range markers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("build markers: %w", err)
		}
		id, err := guid.Next(s.ids)
		if err != nil {
			return nil, err
		}
		chain := xmltree.NewChain(markerSkeleton)
		description := chain.Nodes[markerDescriptionIndex]
		description.CreateAttr(attrStartTime, m.StartTime())
		description.CreateAttr(attrGUID, id)
		if m.HasText() {
			description.CreateAttr(attrName, m.Text)
		}
		chain.Nodes[markerParamIndex].CreateAttr(attrValue, id)
		items = append(items, chain.Head())
	}
	return items, nil
}

func attach(list *etree.Element, items []*etree.Element) {
	for _, item := range items {
		list.AddChild(item)
	}
}

func readOnly(info fs.FileInfo) bool {
	return info.Mode().Perm()&0o222 == 0
}
