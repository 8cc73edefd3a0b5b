package documents

import "time"

// sampleDocument is the demo fallback returned for unknown document ids
// when demo mode is on. Ids are derived from the requested id so the
// record is internally consistent, and timestamps are freshly minted.
func sampleDocument(id string) Document {
	now := time.Now().UTC()
	quizID := "quiz-" + id
	return Document{
		ID:        id,
		UserID:    DefaultUserID,
		Title:     "Sample Document: AI Fundamentals",
		FilePath:  "/uploads/" + id + ".pdf",
		Processed: true,
		CreatedAt: now,
		Summary: &Summary{
			ID:         "sum-" + id,
			DocumentID: id,
			Content: "This document provides a comprehensive introduction to Artificial Intelligence, " +
				"covering key concepts such as machine learning, neural networks, natural language processing, " +
				"and computer vision. It explores the historical development of AI, current applications across " +
				"various industries, and future prospects for AI technology.",
			CreatedAt: now,
		},
		Flashcards: []Flashcard{
			{
				ID:         "fc-" + id + "-1",
				DocumentID: id,
				Question:   "What is Artificial Intelligence?",
				Answer:     "Artificial Intelligence is the simulation of human intelligence processes by machines, especially computer systems.",
				CreatedAt:  now,
			},
			{
				ID:         "fc-" + id + "-2",
				DocumentID: id,
				Question:   "What are the main types of machine learning?",
				Answer:     "Supervised learning, unsupervised learning, and reinforcement learning.",
				CreatedAt:  now,
			},
			{
				ID:         "fc-" + id + "-3",
				DocumentID: id,
				Question:   "What is a neural network?",
				Answer:     "A computing system inspired by biological neural networks that processes information using interconnected nodes.",
				CreatedAt:  now,
			},
		},
		Quiz: &Quiz{
			ID:         quizID,
			DocumentID: id,
			Title:      "AI Fundamentals Quiz",
			CreatedAt:  now,
			Questions: []QuizQuestion{
				{
					ID:            "q-" + id + "-1",
					QuizID:        quizID,
					Question:      "Which of the following is a subset of AI focused on learning from data?",
					Options:       []string{"Machine Learning", "Computer Graphics", "Database Management", "Web Development"},
					CorrectAnswer: "Machine Learning",
					CreatedAt:     now,
				},
				{
					ID:            "q-" + id + "-2",
					QuizID:        quizID,
					Question:      "What type of AI can perform any intellectual task that a human can do?",
					Options:       []string{"Narrow AI", "General AI", "Super AI", "Weak AI"},
					CorrectAnswer: "General AI",
					CreatedAt:     now,
				},
			},
		},
	}
}
