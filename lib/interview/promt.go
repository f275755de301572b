package interviewhandler

import "fmt"

const questionsPromtTemplate = `
You are an expert in generating interview questions. For the job title provided, generate 10 concise interview questions and answers. Each question must be under 15 words, and each answer under 30 words. Use simple language, avoid special characters, symbols, or Markdown. Return the result as a JSON array with objects containing:
- id: number (1 to 10)
- question: string
- answer: string
Format for job title: %s.
No formatting or extra characters
Example output: [{"id": 1, "question": "What is a RESTful API?", "answer": "It uses HTTP methods for CRUD operations and resource-based URLs."}, ...]
`

func buildPromt(jobTitle string) string {
	return fmt.Sprintf(questionsPromtTemplate, jobTitle)
}
