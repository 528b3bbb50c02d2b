package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// ScoringClient supplies the two AI capabilities the ATS score is built
// from: text embeddings and keyword extraction.
type ScoringClient interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
}

// Scorer estimates how well a resume matches a job description: embedding
// cosine similarity weighted 60%, keyword coverage weighted 40%.
type Scorer struct {
	ai ScoringClient
}

func NewScorer(ai ScoringClient) *Scorer {
	return &Scorer{ai: ai}
}

func (s *Scorer) Score(ctx context.Context, resumeText, jobDescription string) (*domain.ScoreReport, error) {
	resumeEmb, err := s.ai.Embed(ctx, resumeText)
	if err != nil {
		return nil, err
	}
	jdEmb, err := s.ai.Embed(ctx, jobDescription)
	if err != nil {
		return nil, err
	}
	semantic, err := cosineSimilarity(resumeEmb, jdEmb)
	if err != nil {
		return nil, err
	}

	jdKeywords, err := s.ai.ExtractKeywords(ctx, jobDescription)
	if err != nil {
		return nil, err
	}
	resumeKeywords, err := s.ai.ExtractKeywords(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, k := range resumeKeywords {
		resumeSet[k] = true
	}

	var matched, missing []string
	seen := map[string]bool{}
	for _, k := range jdKeywords {
		if seen[k] {
			continue
		}
		seen[k] = true
		if resumeSet[k] {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	keyword := 1.0
	if len(seen) > 0 {
		keyword = float64(len(matched)) / float64(len(seen))
	}

	total := semantic*0.6 + keyword*0.4
	return &domain.ScoreReport{
		TotalScore:      round2(total * 100),
		SemanticMatch:   round2(semantic * 100),
		KeywordMatch:    round2(keyword * 100),
		MatchedKeywords: cap10(matched),
		MissingKeywords: cap10(missing),
	}, nil
}

func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func cap10(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	if len(xs) > 10 {
		return xs[:10]
	}
	return xs
}
