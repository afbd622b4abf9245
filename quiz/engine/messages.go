package engine

import (
	"fmt"

	"github.com/Dzima-G/caht-bot-quiz/quiz/session"
)

const (
	msgGreeting = "Press «New question» to start the quiz."

	msgNoQuestions = "No questions available yet. Please come back later."
	msgUnavailable = "The quiz is temporarily unavailable. Please try again later."

	msgNotTimeForNewQuestion = "It's not the time to request a new question.\n" +
		"Answer first, or press «Give up»."
	msgNoQuestionYet = "You have not received a question yet!"

	msgCorrect = "Correct! Congratulations! Press «New question» for the next one."
	msgWrong   = "Wrong… Try again?"

	msgNoHint = "There is no hint for this question."
)

func formatGiveUp(answer string) string {
	return fmt.Sprintf("You gave up...\nThe correct answer: %s", answer)
}

func formatNewQuestion(question string) string {
	return fmt.Sprintf("Your new question:\n%s", question)
}

func formatStats(stats session.Stats) string {
	return fmt.Sprintf(
		"Your score:\nQuestions asked: %d\nCorrect answers: %d\nGiven up: %d",
		stats.QuestionsAsked, stats.CorrectAnswers, stats.GiveUp,
	)
}
