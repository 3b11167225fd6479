// Package gaze defines the data contracts consumed and produced by the
// drift-correction engine: individual fixations, ordered fixation
// sequences, and the read-only geometry of a block of text.
//
// Ownership model:
//
//   - FixationSequence is constructed upstream (by whatever parses the
//     eye-tracker recording) and passed into the engine. The engine never
//     mutates fixation positions in place; correction produces a brand-new
//     sequence. The only in-place mutation the engine performs is setting
//     the Discarded flag during bounds filtering.
//
//   - TextBlock is immutable after construction. Accessors return copies,
//     so callers cannot corrupt the layout through a returned slice.
//
// Invariants enforced at construction:
//
//   - Line y-positions are strictly increasing (top-to-bottom reading order).
//   - Word-center and character-center groups match the row count.
//
// Errors (sentinel):
//
//   - ErrNoLines       if a TextBlock is built with zero rows.
//   - ErrLineOrder     if line y-positions are not strictly increasing.
//   - ErrGroupMismatch if word/character groups do not match the row count.
package gaze
