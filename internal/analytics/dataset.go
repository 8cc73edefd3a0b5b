package analytics

// OverallAnalytics aggregates study activity across all documents.
type OverallAnalytics struct {
	TotalStudyTime             int     `json:"total_study_time"`
	CurrentStreak              int     `json:"current_streak"`
	LongestStreak              int     `json:"longest_streak"`
	TotalFlashcardsSeen        int     `json:"total_flashcards_seen"`
	TotalFlashcardsMastered    int     `json:"total_flashcards_mastered"`
	FlashcardAccuracyOverall   float64 `json:"flashcard_accuracy_overall"`
	TotalQuizzesCompleted      int     `json:"total_quizzes_completed"`
	AverageQuizScoreOverall    float64 `json:"average_quiz_score_overall"`
	StudySessionsThisWeekCount int     `json:"study_sessions_this_week_count"`
}

// DatedStudyData is one day of activity in the study sessions chart.
type DatedStudyData struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Sessions int    `json:"sessions"`
}

// DocumentPerformance is per-document flashcard accuracy.
type DocumentPerformance struct {
	DocumentTitle string  `json:"document_title"`
	Accuracy      float64 `json:"accuracy"`
	Attempts      int     `json:"attempts"`
}

// RecentQuizPerformance is one completed quiz in the recent scores
// chart.
type RecentQuizPerformance struct {
	Date      string  `json:"date"`
	Score     float64 `json:"score"`
	QuizTitle string  `json:"quiz_title"`
}

// PageData is the payload behind the analytics page.
type PageData struct {
	OverallAnalytics              OverallAnalytics        `json:"overall_analytics"`
	StudySessionsChartData        []DatedStudyData        `json:"study_sessions_chart_data"`
	FlashcardPerformanceChartData []DocumentPerformance   `json:"flashcard_performance_chart_data"`
	QuizPerformanceChartData      []RecentQuizPerformance `json:"quiz_performance_chart_data"`
}

// DemoPageData returns the canned development dataset served while no
// real tracking backend exists.
func DemoPageData() PageData {
	return PageData{
		OverallAnalytics: OverallAnalytics{
			TotalStudyTime:             3600,
			CurrentStreak:              3,
			LongestStreak:              5,
			TotalFlashcardsSeen:        50,
			TotalFlashcardsMastered:    30,
			FlashcardAccuracyOverall:   75.0,
			TotalQuizzesCompleted:      10,
			AverageQuizScoreOverall:    85.0,
			StudySessionsThisWeekCount: 5,
		},
		StudySessionsChartData: []DatedStudyData{
			{Date: "2025-06-06", Duration: 30, Sessions: 1},
			{Date: "2025-06-07", Duration: 45, Sessions: 2},
			{Date: "2025-06-08", Duration: 60, Sessions: 2},
			{Date: "2025-06-09", Duration: 30, Sessions: 1},
			{Date: "2025-06-10", Duration: 90, Sessions: 3},
			{Date: "2025-06-11", Duration: 60, Sessions: 2},
			{Date: "2025-06-12", Duration: 45, Sessions: 2},
		},
		FlashcardPerformanceChartData: []DocumentPerformance{
			{DocumentTitle: "Introduction to AI", Accuracy: 85.0, Attempts: 20},
			{DocumentTitle: "Machine Learning Basics", Accuracy: 75.0, Attempts: 15},
			{DocumentTitle: "Neural Networks", Accuracy: 70.0, Attempts: 10},
		},
		QuizPerformanceChartData: []RecentQuizPerformance{
			{Date: "2025-06-01", Score: 75.0, QuizTitle: "AI Quiz 1"},
			{Date: "2025-06-03", Score: 80.0, QuizTitle: "ML Quiz"},
			{Date: "2025-06-06", Score: 85.0, QuizTitle: "NN Quiz"},
			{Date: "2025-06-09", Score: 90.0, QuizTitle: "AI Quiz 2"},
			{Date: "2025-06-12", Score: 95.0, QuizTitle: "Final Quiz"},
		},
	}
}

// EmptyPageData returns a zero-valued payload with the same shape as
// the demo dataset. Chart series are empty arrays, never null.
func EmptyPageData() PageData {
	return PageData{
		StudySessionsChartData:        []DatedStudyData{},
		FlashcardPerformanceChartData: []DocumentPerformance{},
		QuizPerformanceChartData:      []RecentQuizPerformance{},
	}
}
