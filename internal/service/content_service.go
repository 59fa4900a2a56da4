package service

import (
	"context"
	"sort"
	"strings"

	"pensees/internal/models"
	"pensees/internal/repository"
)

// Tag cloud font bounds, in pixels.
const (
	TagFontMin = 14
	TagFontMax = 28
)

// TagWeight is one tag-cloud entry: the registry label, how many content
// items carry it, and the derived font size.
type TagWeight struct {
	Label    string `json:"label"`
	Count    int    `json:"count"`
	FontSize int    `json:"fontSize"`
}

// ContentService wraps the raw repositories and produces display-ready
// projections: recency-sorted lists, tag-scoped views and reflections with
// their comments attached.
type ContentService interface {
	ListAphorisms(ctx context.Context) ([]models.Aphorism, error)
	ListAphorismsByTag(ctx context.Context, label string) ([]models.Aphorism, error)
	ListFeaturedAphorisms(ctx context.Context) ([]models.Aphorism, error)
	GetAphorism(ctx context.Context, aphorismID string) (*models.Aphorism, error)
	ListReflections(ctx context.Context, publishedOnly bool) ([]models.Reflection, error)
	ListReflectionsByTag(ctx context.Context, label string) ([]models.Reflection, error)
	GetReflectionByID(ctx context.Context, reflectionID string) (*models.Reflection, error)
	GetReflectionBySlug(ctx context.Context, slug string) (*models.Reflection, error)
	TagCloud(ctx context.Context) ([]TagWeight, error)
}

type contentService struct {
	aphorismRepo   repository.AphorismRepository
	savedImageRepo repository.SavedImageRepository
	reflectionRepo repository.ReflectionRepository
	tagRepo        repository.TagRepository
	commentRepo    repository.CommentRepository
}

func NewContentService(repo *repository.Repository) ContentService {
	return &contentService{
		aphorismRepo:   repo.Aphorism,
		savedImageRepo: repo.SavedImage,
		reflectionRepo: repo.Reflection,
		tagRepo:        repo.Tag,
		commentRepo:    repo.Comment,
	}
}

func (s *contentService) ListAphorisms(ctx context.Context) ([]models.Aphorism, error) {
	aphorisms, err := s.aphorismRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sortAphorismsByRecency(aphorisms)
	return aphorisms, nil
}

// ListAphorismsByTag is the server-side predicate path used by theme pages.
func (s *contentService) ListAphorismsByTag(ctx context.Context, label string) ([]models.Aphorism, error) {
	aphorisms, err := s.aphorismRepo.GetByTag(ctx, label)
	if err != nil {
		return nil, err
	}

	sortAphorismsByRecency(aphorisms)
	return aphorisms, nil
}

func (s *contentService) ListFeaturedAphorisms(ctx context.Context) ([]models.Aphorism, error) {
	aphorisms, err := s.aphorismRepo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}

	sortAphorismsByRecency(aphorisms)
	return aphorisms, nil
}

func (s *contentService) GetAphorism(ctx context.Context, aphorismID string) (*models.Aphorism, error) {
	aphorism, err := s.aphorismRepo.GetByID(ctx, aphorismID)
	if err != nil {
		return nil, err
	}

	images, err := s.savedImageRepo.GetByAphorismID(ctx, aphorismID)
	if err != nil {
		return nil, err
	}
	aphorism.Images = images

	return aphorism, nil
}

func (s *contentService) ListReflections(ctx context.Context, publishedOnly bool) ([]models.Reflection, error) {
	var reflections []models.Reflection
	var err error

	if publishedOnly {
		reflections, err = s.reflectionRepo.GetPublished(ctx)
	} else {
		reflections, err = s.reflectionRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if err = s.attachComments(ctx, reflections); err != nil {
		return nil, err
	}

	sortReflectionsByRecency(reflections)
	return reflections, nil
}

func (s *contentService) ListReflectionsByTag(ctx context.Context, label string) ([]models.Reflection, error) {
	reflections, err := s.reflectionRepo.GetPublishedByTag(ctx, label)
	if err != nil {
		return nil, err
	}

	if err = s.attachComments(ctx, reflections); err != nil {
		return nil, err
	}

	sortReflectionsByRecency(reflections)
	return reflections, nil
}

func (s *contentService) GetReflectionByID(ctx context.Context, reflectionID string) (*models.Reflection, error) {
	reflection, err := s.reflectionRepo.GetByID(ctx, reflectionID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByReflectionID(ctx, reflectionID)
	if err != nil {
		return nil, err
	}
	reflection.Comments = comments

	return reflection, nil
}

func (s *contentService) GetReflectionBySlug(ctx context.Context, slug string) (*models.Reflection, error) {
	reflection, err := s.reflectionRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByReflectionID(ctx, reflection.ReflectionID)
	if err != nil {
		return nil, err
	}
	reflection.Comments = comments

	return reflection, nil
}

// attachComments joins comments onto their reflections through one lookup
// keyed on the reflection id, instead of one query per reflection.
func (s *contentService) attachComments(ctx context.Context, reflections []models.Reflection) error {
	if len(reflections) == 0 {
		return nil
	}

	comments, err := s.commentRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	byReflection := make(map[string][]models.Comment, len(reflections))
	for _, c := range comments {
		byReflection[c.ReflectionID] = append(byReflection[c.ReflectionID], c)
	}

	for i := range reflections {
		reflections[i].Comments = byReflection[reflections[i].ReflectionID]
	}

	return nil
}

// TagCloud counts how often each registry label appears on content items
// and scales the font size proportionally between TagFontMin and TagFontMax.
func (s *contentService) TagCloud(ctx context.Context) ([]TagWeight, error) {
	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	aphorisms, err := s.aphorismRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	reflections, err := s.reflectionRepo.GetPublished(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(tags))
	for _, a := range aphorisms {
		for _, label := range a.Tags {
			counts[strings.ToLower(label)]++
		}
	}
	for _, r := range reflections {
		for _, label := range r.Tags {
			counts[strings.ToLower(label)]++
		}
	}

	weights := make([]TagWeight, 0, len(tags))
	for _, tag := range tags {
		weights = append(weights, TagWeight{
			Label: tag.Label,
			Count: counts[strings.ToLower(tag.Label)],
		})
	}

	ScaleTagFonts(weights, TagFontMin, TagFontMax)
	return weights, nil
}

// ScaleTagFonts assigns each weight a font size proportional to its count.
// When every count is equal the proportional formula would divide by zero,
// so all tags fall back to the minimum size.
func ScaleTagFonts(weights []TagWeight, minSize, maxSize int) {
	if len(weights) == 0 {
		return
	}

	minCount, maxCount := weights[0].Count, weights[0].Count
	for _, w := range weights {
		if w.Count < minCount {
			minCount = w.Count
		}
		if w.Count > maxCount {
			maxCount = w.Count
		}
	}

	for i := range weights {
		if maxCount == minCount {
			weights[i].FontSize = minSize
			continue
		}
		weights[i].FontSize = minSize +
			(weights[i].Count-minCount)*(maxSize-minSize)/(maxCount-minCount)
	}
}

// MatchesTag is the client-side filter used by the gallery and the public
// reflections list, which load the full set and filter in memory. The
// match is exact but case-insensitive.
func MatchesTag(tags []string, label string) bool {
	if label == "" {
		return true
	}
	for _, t := range tags {
		if strings.EqualFold(t, label) {
			return true
		}
	}
	return false
}

func FilterAphorismsByTag(aphorisms []models.Aphorism, label string) []models.Aphorism {
	if label == "" {
		return aphorisms
	}
	filtered := make([]models.Aphorism, 0, len(aphorisms))
	for _, a := range aphorisms {
		if MatchesTag(a.Tags, label) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func FilterReflectionsByTag(reflections []models.Reflection, label string) []models.Reflection {
	if label == "" {
		return reflections
	}
	filtered := make([]models.Reflection, 0, len(reflections))
	for _, r := range reflections {
		if MatchesTag(r.Tags, label) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func sortAphorismsByRecency(aphorisms []models.Aphorism) {
	sort.SliceStable(aphorisms, func(i, j int) bool {
		return aphorisms[i].CreatedAt.After(aphorisms[j].CreatedAt)
	})
}

func sortReflectionsByRecency(reflections []models.Reflection) {
	sort.SliceStable(reflections, func(i, j int) bool {
		return reflections[i].CreatedAt.After(reflections[j].CreatedAt)
	})
}
