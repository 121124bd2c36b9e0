package progress

import "signflow/internal/domain"

type ViewMode string

const (
	ViewModeNone    ViewMode = "NONE"
	ViewModeSingle  ViewMode = "SINGLE"
	ViewModeGallery ViewMode = "GALLERY"
)

// Image is a display-ready progress photo. Failed marks an image whose
// storage key could not be resolved to a URL.
type Image struct {
	URL    string `json:"url"`
	Failed bool   `json:"-"`
}

// PhaseView is the presentation model for one production phase indicator.
type PhaseView struct {
	Phase       domain.ProgressStatus
	Description string
	Images      []Image
	Mode        ViewMode
	Clickable   bool

	// LoadFailed is set only for single-image views whose one image could
	// not be resolved; galleries silently render fewer tiles instead.
	LoadFailed bool
}

// Input is everything the aggregation needs, already fetched: the order's
// progress logs in creation order, their images keyed by log id, and the
// order's legacy per-phase images (resolved separately by the caller).
// Logs whose image list failed to load must be left out of Images; they
// count as having no visual content.
type Input struct {
	Logs   []domain.ProgressLog
	Images map[uint][]Image
	Legacy map[domain.ProgressStatus]Image
}

// Aggregate merges all progress logs into one view per production phase.
// It is deterministic: the same input always yields the same views.
func Aggregate(input Input) []PhaseView {
	views := make([]PhaseView, 0, 4)
	for _, phase := range domain.ProductionPhases() {
		views = append(views, aggregatePhase(phase, input))
	}
	return views
}

func aggregatePhase(phase domain.ProgressStatus, input Input) PhaseView {
	view := PhaseView{Phase: phase, Mode: ViewModeNone}

	var subset []domain.ProgressLog
	for _, log := range input.Logs {
		if log.Status == phase {
			subset = append(subset, log)
		}
	}

	// Representative description: first non-empty among same-phase logs,
	// independent of which log supplies the images.
	for _, log := range subset {
		if log.Description != "" {
			view.Description = log.Description
			break
		}
	}

	// Representative image set: the first log in creation order that has
	// at least one image.
	var representative []Image
	for _, log := range subset {
		if imgs := input.Images[log.ID]; len(imgs) > 0 {
			representative = imgs
			break
		}
	}

	legacy, hasLegacy := input.Legacy[phase]
	view.Clickable = len(representative) > 0 || hasLegacy

	switch {
	case len(representative) == 1:
		view.Mode = ViewModeSingle
		view.Images = []Image{representative[0]}
		view.LoadFailed = representative[0].Failed
	case len(representative) > 1:
		// Gallery: union of every same-phase log that has images, in log
		// order, unresolved images dropped. No deduplication.
		view.Mode = ViewModeGallery
		for _, log := range subset {
			for _, img := range input.Images[log.ID] {
				if img.Failed {
					continue
				}
				view.Images = append(view.Images, img)
			}
		}
	case hasLegacy:
		view.Mode = ViewModeSingle
		view.Images = []Image{legacy}
		view.LoadFailed = legacy.Failed
	}

	return view
}
