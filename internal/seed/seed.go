// Package seed populates a fresh store with sample records so the
// catalog is never empty on first run. Seeding is idempotent: each
// collection is only written if its key is absent.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skynet-news/internal/domain"
	"skynet-news/internal/store"
)

const sampleUploaderID = "uploader-001"

// Run seeds the articles and uploaders collections if they are absent.
func Run(ctx context.Context, s store.Store) error {
	if err := seedArticles(ctx, s); err != nil {
		return err
	}
	return seedUploaders(ctx, s)
}

func seedArticles(ctx context.Context, s store.Store) error {
	_, ok, err := s.Get(ctx, store.ArticlesKey)
	if err != nil {
		return fmt.Errorf("check articles: %w", err)
	}
	if ok {
		return nil
	}

	now := time.Now().UTC()
	articles := []domain.Article{
		{
			ID:           "mock-1",
			Title:        "Generative AI Redefines Creative Industries",
			Summary:      "New models are now capable of producing stunning visuals and coherent text, challenging the boundaries of human creativity.",
			Content:      "The landscape of creative industries is being rapidly reshaped by the advent of advanced generative AI. From graphic design to music composition, AI tools are no longer just assistants but collaborators. New models are now capable of producing stunning visuals from simple text prompts and generating coherent, context-aware articles on a wide range of topics. This technological leap challenges the very definition of creativity and raises important questions about authorship and intellectual property in an AI-augmented world. Artists and writers are exploring hybrid workflows, where human intuition guides the vast computational power of AI to create novel forms of art.",
			Thumbnail:    "https://picsum.photos/seed/aiart/600/400",
			Topics:       []string{"Generative AI", "Technology"},
			PublishDate:  now.AddDate(0, 0, -1).Format(time.RFC3339),
			UploaderID:   sampleUploaderID,
			UploaderName: "Jane Doe",
		},
		{
			ID:           "mock-2",
			Title:        "Breakthrough in Autonomous Drone Navigation",
			Summary:      "Researchers have developed a new reinforcement learning algorithm that allows drones to navigate complex environments without GPS.",
			Content:      "A significant breakthrough in autonomous systems has been achieved by a team of researchers specializing in robotics. They have developed a novel reinforcement learning algorithm that enables drones to navigate cluttered and dynamic environments with unprecedented accuracy, all without relying on GPS signals. The system uses a combination of onboard cameras and lidar to build a real-time 3D map of its surroundings, making intelligent decisions to avoid obstacles and find the most efficient path. This technology has vast implications for search and rescue operations, automated logistics, and infrastructure inspection, especially in areas where GPS is unreliable or unavailable.",
			Thumbnail:    "https://picsum.photos/seed/drone/600/400",
			Topics:       []string{"Technology", "Defence"},
			PublishDate:  now.Format(time.RFC3339),
			UploaderID:   sampleUploaderID,
			UploaderName: "Jane Doe",
		},
		{
			ID:           "mock-3",
			Title:        "City United Wins Championship in Stunning Final",
			Summary:      "A last-minute goal secured the victory for City United in a dramatic conclusion to the season.",
			Content:      "In a nail-biting final that will be remembered for years to come, City United clinched the championship title with a dramatic goal in the final seconds of stoppage time. The match was a tense affair, with both teams displaying incredible skill and determination. The deciding goal came from a spectacular long-range shot that left the opposing goalkeeper with no chance. Fans erupted in celebration as the final whistle blew, marking the culmination of a remarkable season for the underdog team. The victory parade is scheduled for Tuesday, where the team will celebrate with their loyal supporters.",
			Thumbnail:    "https://picsum.photos/seed/soccer/600/400",
			Topics:       []string{"Sports", "Entertainment"},
			PublishDate:  now.Format(time.RFC3339),
			UploaderID:   sampleUploaderID,
			UploaderName: "Jane Doe",
		},
	}

	raw, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encode sample articles: %w", err)
	}
	if err := s.Set(ctx, store.ArticlesKey, raw); err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	return nil
}

func seedUploaders(ctx context.Context, s store.Store) error {
	_, ok, err := s.Get(ctx, store.UploadersKey)
	if err != nil {
		return fmt.Errorf("check uploaders: %w", err)
	}
	if ok {
		return nil
	}

	uploaders := []domain.Uploader{
		{
			ID:            sampleUploaderID,
			Name:          "Jane Doe",
			Age:           34,
			Qualification: "Masters in Journalism",
		},
	}

	raw, err := json.Marshal(uploaders)
	if err != nil {
		return fmt.Errorf("encode sample uploaders: %w", err)
	}
	if err := s.Set(ctx, store.UploadersKey, raw); err != nil {
		return fmt.Errorf("seed uploaders: %w", err)
	}
	return nil
}
