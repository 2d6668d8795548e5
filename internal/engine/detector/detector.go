// Package detector decides whether a document changed since it was last cached.
//
// Detection runs in two phases. Check needs only the cached entry and the
// current modification time and may settle the outcome without touching the
// document. When it cannot, Classify takes the digest of the document body
// and produces the final decision.
package detector

import "go.trai.ch/stamp/internal/core/domain"

// Probe is the outcome of the cheap phase.
type Probe struct {
	// Done is set when no content inspection is needed; Decision is then final.
	Done     bool
	Decision domain.Decision

	prior      domain.CacheEntry
	priorFound bool
	mtime      float64
	force      bool
}

// Check evaluates the force flag and the modification time fast path.
func Check(prior domain.CacheEntry, found bool, mtime float64, force bool) Probe {
	p := Probe{
		prior:      prior,
		priorFound: found,
		mtime:      mtime,
		force:      force,
	}

	if !force && found && prior.ModifiedAt == mtime {
		p.Done = true
		p.Decision = domain.Decision{
			Action:     domain.ActionSkip,
			Reason:     domain.ReasonUnchangedMtime,
			Prior:      prior,
			PriorFound: true,
		}
	}

	return p
}

// Classify completes detection given the digest of the current body.
// Calling it on a finished probe returns the probe's decision unchanged.
func (p Probe) Classify(digest string) domain.Decision {
	if p.Done {
		return p.Decision
	}

	d := domain.Decision{
		Entry:      domain.CacheEntry{Hash: digest, ModifiedAt: p.mtime},
		Prior:      p.prior,
		PriorFound: p.priorFound,
	}

	switch {
	case p.force:
		d.Action, d.Reason = domain.ActionRewrite, domain.ReasonForced
	case !p.priorFound:
		d.Action, d.Reason = domain.ActionUpdateCache, domain.ReasonFirstSight
	case p.prior.Hash != digest:
		d.Action, d.Reason = domain.ActionRewrite, domain.ReasonContentChanged
	default:
		d.Action, d.Reason = domain.ActionUpdateCache, domain.ReasonMtimeOnly
	}

	return d
}

// Decide runs both phases. digest is called only when content inspection is needed.
func Decide(
	prior domain.CacheEntry,
	found bool,
	mtime float64,
	force bool,
	digest func() (string, error),
) (domain.Decision, error) {
	p := Check(prior, found, mtime, force)
	if p.Done {
		return p.Decision, nil
	}

	sum, err := digest()
	if err != nil {
		return domain.Decision{}, err
	}
	return p.Classify(sum), nil
}
