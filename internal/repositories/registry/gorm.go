package registry

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
)

type classRecord struct {
	ID               int    `gorm:"primaryKey;autoIncrement:false"`
	Alias            string `gorm:"index"`
	Name             string `gorm:"uniqueIndex"`
	BookAbbreviation string
	BookAlias        string `gorm:"index"`
	ShortDescription string
	IsOwnSpellList   *bool
	MaxSpellLevel    *int
	ParentClassIDs   []int `gorm:"serializer:json"`
}

func (classRecord) TableName() string { return "classes" }

type schoolRecord struct {
	ID       int `gorm:"primaryKey;autoIncrement:false"`
	Name     string
	TypeID   int
	TypeName string
}

func (schoolRecord) TableName() string { return "schools" }

type shortSpellInfoRecord struct {
	ID                         uint   `gorm:"primaryKey"`
	Alias                      string `gorm:"uniqueIndex;not null"`
	Name                       string `gorm:"index"`
	ShortDescription           string
	ShortDescriptionComponents string
	BookAbbreviation           string
	BookAlias                  string      `gorm:"index"`
	IsRaceSpell                bool
	SchoolIDs                  []int       `gorm:"serializer:json"`
	ClassLevels                map[int]int `gorm:"serializer:json"`

	Extended *extendedSpellInfoRecord `gorm:"foreignKey:SpellID"`
}

func (shortSpellInfoRecord) TableName() string { return "short_spell_info" }

type extendedSpellInfoRecord struct {
	ID        uint `gorm:"primaryKey"`
	SpellID   uint `gorm:"uniqueIndex;not null"`
	FullName  string
	School    string
	Variables []entities.SpellVariable `gorm:"serializer:json"`
	Text      string                   `gorm:"type:text"`

	Tables []spellTableRecord `gorm:"foreignKey:ExtendedID"`
}

func (extendedSpellInfoRecord) TableName() string { return "extended_spell_info" }

type spellTableRecord struct {
	ID         uint `gorm:"primaryKey"`
	ExtendedID uint `gorm:"index;not null"`
	Position   int
	HTML       string `gorm:"type:text"`
	URL        string
	Path       string
}

func (spellTableRecord) TableName() string { return "spell_tables" }

// Migrate creates or updates the registry schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&classRecord{},
		&schoolRecord{},
		&shortSpellInfoRecord{},
		&extendedSpellInfoRecord{},
		&spellTableRecord{},
	)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed registry repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) UpsertRegistry(ctx context.Context, input UpsertRegistryInput) (*UpsertRegistryOutput, error) {
	if err := validateReferences(input); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Classes and schools first so spell references resolve within
		// the same refresh.
		for _, c := range input.Classes {
			rec := classRecordFromEntity(c)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&rec).Error; err != nil {
				return err
			}
		}

		for _, s := range input.Schools {
			rec := schoolRecord{ID: s.ID, Name: s.Name, TypeID: s.TypeID, TypeName: s.TypeName}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&rec).Error; err != nil {
				return err
			}
		}

		for _, sp := range input.Spells {
			rec := spellRecordFromEntity(sp)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "alias"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "short_description", "short_description_components",
					"book_abbreviation", "book_alias", "is_race_spell",
					"school_ids", "class_levels",
				}),
			}).Create(&rec).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert registry")
	}

	return &UpsertRegistryOutput{}, nil
}

// validateReferences checks every spell's class/school references against the
// classes and schools in the same payload. A dangling id fails the whole
// refresh so the store never holds a spell it cannot resolve.
func validateReferences(input UpsertRegistryInput) error {
	classIDs := make(map[int]struct{}, len(input.Classes))
	for _, c := range input.Classes {
		classIDs[c.ID] = struct{}{}
	}
	schoolIDs := make(map[int]struct{}, len(input.Schools))
	for _, s := range input.Schools {
		schoolIDs[s.ID] = struct{}{}
	}

	for _, sp := range input.Spells {
		for _, cl := range sp.Classes {
			if _, ok := classIDs[cl.ID]; !ok {
				return errors.FailedPreconditionf(
					"spell %q references class id %d absent from payload", sp.Alias, cl.ID)
			}
		}
		for _, sc := range sp.Schools {
			if _, ok := schoolIDs[sc.ID]; !ok {
				return errors.FailedPreconditionf(
					"spell %q references school id %d absent from payload", sp.Alias, sc.ID)
			}
		}
	}

	return nil
}

func (r *gormRepository) HasSufficientData(ctx context.Context, input HasSufficientDataInput) (*HasSufficientDataOutput, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shortSpellInfoRecord{}).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count spells")
	}

	return &HasSufficientDataOutput{Sufficient: count > int64(input.MinSpellCount)}, nil
}

func (r *gormRepository) FindSpellsByName(ctx context.Context, input FindSpellsByNameInput) (*FindSpellsByNameOutput, error) {
	var rows []shortSpellInfoRecord
	q := r.db.WithContext(ctx).Order("name asc")
	if len(input.IncludedBooks) > 0 {
		q = q.Where("book_alias IN ?", input.IncludedBooks)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query spells by name")
	}

	resolve, err := r.newResolver(ctx)
	if err != nil {
		return nil, err
	}

	// Substring match happens here rather than in SQL: sqlite LOWER does not
	// fold non-ASCII names.
	spells := make([]entities.ShortSpellInfo, 0, len(rows))
	for i := range rows {
		if !strings.Contains(strings.ToLower(rows[i].Name), input.Query) {
			continue
		}
		sp, err := resolve.spell(&rows[i])
		if err != nil {
			return nil, err
		}
		spells = append(spells, *sp)
	}

	return &FindSpellsByNameOutput{Spells: spells}, nil
}

func (r *gormRepository) FindSpellsByClassLevel(ctx context.Context, input FindSpellsByClassLevelInput) (*FindSpellsByClassLevelOutput, error) {
	var rows []shortSpellInfoRecord
	q := r.db.WithContext(ctx).Order("name asc")
	if len(input.IncludedBooks) > 0 {
		q = q.Where("book_alias IN ?", input.IncludedBooks)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query spells by class and level")
	}

	resolve, err := r.newResolver(ctx)
	if err != nil {
		return nil, err
	}

	spells := make([]entities.ShortSpellInfo, 0)
	for i := range rows {
		level, ok := rows[i].ClassLevels[input.ClassID]
		if !ok || level != input.Level {
			continue
		}
		sp, err := resolve.spell(&rows[i])
		if err != nil {
			return nil, err
		}
		spells = append(spells, *sp)
	}

	return &FindSpellsByClassLevelOutput{Spells: spells}, nil
}

func (r *gormRepository) GetClass(ctx context.Context, input GetClassInput) (*GetClassOutput, error) {
	var rec classRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", input.ClassID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("class with id %d not found", input.ClassID)
		}
		return nil, errors.Wrap(err, "failed to get class")
	}

	class := classEntityFromRecord(&rec)
	return &GetClassOutput{Class: &class}, nil
}

func (r *gormRepository) ListClasses(ctx context.Context, input ListClassesInput) (*ListClassesOutput, error) {
	var rows []classRecord
	q := r.db.WithContext(ctx).Order("name asc")
	if len(input.IncludedBooks) > 0 {
		q = q.Where("book_alias IN ?", input.IncludedBooks)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list classes")
	}

	classes := make([]entities.ClassInfo, 0, len(rows))
	for i := range rows {
		classes = append(classes, classEntityFromRecord(&rows[i]))
	}

	return &ListClassesOutput{Classes: classes}, nil
}

func (r *gormRepository) ListLevels(ctx context.Context, input ListLevelsInput) (*ListLevelsOutput, error) {
	var rows []shortSpellInfoRecord
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to scan spells for levels")
	}

	seen := make(map[int]struct{})
	for i := range rows {
		if level, ok := rows[i].ClassLevels[input.ClassID]; ok {
			seen[level] = struct{}{}
		}
	}

	levels := make([]int, 0, len(seen))
	for level := range seen {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	return &ListLevelsOutput{Levels: levels}, nil
}

func (r *gormRepository) ListRulebooks(ctx context.Context, input ListRulebooksInput) (*ListRulebooksOutput, error) {
	var books []string
	err := r.db.WithContext(ctx).
		Model(&shortSpellInfoRecord{}).
		Distinct("book_alias").
		Order("book_alias asc").
		Pluck("book_alias", &books).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rulebooks")
	}

	return &ListRulebooksOutput{Books: books}, nil
}

func (r *gormRepository) GetFullSpellInfo(ctx context.Context, input GetFullSpellInfoInput) (*GetFullSpellInfoOutput, error) {
	var rec shortSpellInfoRecord
	err := r.db.WithContext(ctx).
		Preload("Extended.Tables", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Extended").
		First(&rec, "alias = ?", input.Alias).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("spell with alias %q not found", input.Alias)
		}
		return nil, errors.Wrap(err, "failed to get spell")
	}

	resolve, err := r.newResolver(ctx)
	if err != nil {
		return nil, err
	}
	spell, err := resolve.spell(&rec)
	if err != nil {
		return nil, err
	}

	out := &GetFullSpellInfoOutput{Spell: spell}
	if rec.Extended != nil {
		out.Extended = extendedEntityFromRecord(rec.Extended)
	}

	return out, nil
}

func (r *gormRepository) CreateExtendedSpellInfo(ctx context.Context, input CreateExtendedSpellInfoInput) (*CreateExtendedSpellInfoOutput, error) {
	var created *extendedSpellInfoRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var spell shortSpellInfoRecord
		if err := tx.First(&spell, "alias = ?", input.Alias).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NotFoundf("spell with alias %q not found", input.Alias)
			}
			return err
		}

		var existing int64
		if err := tx.Model(&extendedSpellInfoRecord{}).
			Where("spell_id = ?", spell.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errors.AlreadyExistsf("extended info already exists for spell %q", input.Alias)
		}

		rec := extendedSpellInfoRecord{
			SpellID:   spell.ID,
			FullName:  input.Extended.FullName,
			School:    input.Extended.School,
			Variables: input.Extended.Variables,
			Text:      input.Extended.Text,
		}
		for i, t := range input.Tables {
			rec.Tables = append(rec.Tables, spellTableRecord{
				Position: i,
				HTML:     t.HTML,
				URL:      t.URL,
				Path:     t.Path,
			})
		}

		if err := tx.Create(&rec).Error; err != nil {
			// The unique index on spell_id catches a concurrent first
			// access that slipped past the count above.
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return errors.AlreadyExistsf("extended info already exists for spell %q", input.Alias)
			}
			return err
		}

		created = &rec
		return nil
	})
	if err != nil {
		var typed *errors.Error
		if errors.As(err, &typed) {
			return nil, typed
		}
		return nil, errors.Wrap(err, "failed to create extended spell info")
	}

	return &CreateExtendedSpellInfoOutput{Extended: extendedEntityFromRecord(created)}, nil
}

// resolver converts stored spell rows into typed value objects, resolving
// school ids and class-level maps against the class/school tables loaded once
// per query.
type resolver struct {
	classes map[int]entities.ClassInfo
	schools map[int]entities.SchoolInfo
}

func (r *gormRepository) newResolver(ctx context.Context) (*resolver, error) {
	var classRows []classRecord
	if err := r.db.WithContext(ctx).Find(&classRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load classes")
	}
	var schoolRows []schoolRecord
	if err := r.db.WithContext(ctx).Find(&schoolRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load schools")
	}

	res := &resolver{
		classes: make(map[int]entities.ClassInfo, len(classRows)),
		schools: make(map[int]entities.SchoolInfo, len(schoolRows)),
	}
	for i := range classRows {
		res.classes[classRows[i].ID] = classEntityFromRecord(&classRows[i])
	}
	for _, s := range schoolRows {
		res.schools[s.ID] = entities.SchoolInfo{ID: s.ID, Name: s.Name, TypeID: s.TypeID, TypeName: s.TypeName}
	}

	return res, nil
}

func (res *resolver) spell(rec *shortSpellInfoRecord) (*entities.ShortSpellInfo, error) {
	sp := entities.ShortSpellInfo{
		Alias:                      rec.Alias,
		Name:                       rec.Name,
		ShortDescription:           rec.ShortDescription,
		ShortDescriptionComponents: rec.ShortDescriptionComponents,
		BookAbbreviation:           rec.BookAbbreviation,
		BookAlias:                  rec.BookAlias,
		IsRaceSpell:                rec.IsRaceSpell,
	}

	for _, id := range rec.SchoolIDs {
		school, ok := res.schools[id]
		if !ok {
			return nil, errors.Internalf("spell %q references unknown school id %d", rec.Alias, id)
		}
		sp.Schools = append(sp.Schools, school)
	}

	classIDs := make([]int, 0, len(rec.ClassLevels))
	for id := range rec.ClassLevels {
		classIDs = append(classIDs, id)
	}
	sort.Ints(classIDs)
	for _, id := range classIDs {
		class, ok := res.classes[id]
		if !ok {
			return nil, errors.Internalf("spell %q references unknown class id %d", rec.Alias, id)
		}
		sp.Classes = append(sp.Classes, entities.ClassLevel{ClassInfo: class, Level: rec.ClassLevels[id]})
	}

	return &sp, nil
}

func classRecordFromEntity(c entities.ClassInfo) classRecord {
	return classRecord{
		ID:               c.ID,
		Alias:            c.Alias,
		Name:             c.Name,
		BookAbbreviation: c.BookAbbreviation,
		BookAlias:        c.BookAlias,
		ShortDescription: c.ShortDescription,
		IsOwnSpellList:   c.IsOwnSpellList,
		MaxSpellLevel:    c.MaxSpellLevel,
		ParentClassIDs:   c.ParentClassIDs,
	}
}

func classEntityFromRecord(rec *classRecord) entities.ClassInfo {
	return entities.ClassInfo{
		ID:               rec.ID,
		Alias:            rec.Alias,
		Name:             rec.Name,
		BookAbbreviation: rec.BookAbbreviation,
		BookAlias:        rec.BookAlias,
		ShortDescription: rec.ShortDescription,
		IsOwnSpellList:   rec.IsOwnSpellList,
		MaxSpellLevel:    rec.MaxSpellLevel,
		ParentClassIDs:   rec.ParentClassIDs,
	}
}

func spellRecordFromEntity(sp entities.ShortSpellInfo) shortSpellInfoRecord {
	rec := shortSpellInfoRecord{
		Alias:                      sp.Alias,
		Name:                       sp.Name,
		ShortDescription:           sp.ShortDescription,
		ShortDescriptionComponents: sp.ShortDescriptionComponents,
		BookAbbreviation:           sp.BookAbbreviation,
		BookAlias:                  sp.BookAlias,
		IsRaceSpell:                sp.IsRaceSpell,
		SchoolIDs:                  make([]int, 0, len(sp.Schools)),
		ClassLevels:                make(map[int]int, len(sp.Classes)),
	}
	for _, s := range sp.Schools {
		rec.SchoolIDs = append(rec.SchoolIDs, s.ID)
	}
	for _, cl := range sp.Classes {
		rec.ClassLevels[cl.ID] = cl.Level
	}
	return rec
}

func extendedEntityFromRecord(rec *extendedSpellInfoRecord) *entities.ExtendedSpellInfo {
	ext := &entities.ExtendedSpellInfo{
		FullName:  rec.FullName,
		School:    rec.School,
		Variables: rec.Variables,
		Text:      rec.Text,
	}
	for _, t := range rec.Tables {
		ext.Tables = append(ext.Tables, entities.SpellTable{HTML: t.HTML, URL: t.URL, Path: t.Path})
	}
	return ext
}
