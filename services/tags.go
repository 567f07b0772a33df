package services

import (
	"github.com/google/uuid"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
)

// resolveTags maps tag titles to tag rows in input order. For each title the
// slug is computed and an existing tag with that slug is reused; otherwise a
// new tag is inserted. Callers run this inside a transaction so a failure
// rolls back any tags created earlier in the batch.
//
// Titles that slugify to the same value ("React", "react") resolve to the
// same tag, so the operation is idempotent by slug.
func resolveTags(store database.Store, titles []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(titles))
	seen := make(map[string]models.Tag, len(titles))

	for _, title := range titles {
		tagSlug := makeSlug(title)
		if tagSlug == "" {
			continue
		}
		if tag, ok := seen[tagSlug]; ok {
			tags = append(tags, tag)
			continue
		}

		existing, err := store.TagRepo().FindBySlug(tagSlug)
		if err != nil {
			return nil, errs.NewDatabaseError("find", "tag", err)
		}
		if existing != nil {
			seen[tagSlug] = *existing
			tags = append(tags, *existing)
			continue
		}

		tag := models.Tag{ID: uuid.New(), Title: title, Slug: tagSlug}
		if err := store.TagRepo().Add(&tag); err != nil {
			return nil, errs.NewDatabaseError("create", "tag", err)
		}
		seen[tagSlug] = tag
		tags = append(tags, tag)
	}

	return tags, nil
}

// tagsByID loads the tags referenced by ids in a single query and indexes
// them by id for zipping back onto parent rows
func tagsByID(store database.Store, ids []uuid.UUID) (map[uuid.UUID]models.Tag, error) {
	tags, err := store.TagRepo().FindByIDs(ids)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tags", err)
	}
	index := make(map[uuid.UUID]models.Tag, len(tags))
	for _, tag := range tags {
		index[tag.ID] = tag
	}
	return index, nil
}
