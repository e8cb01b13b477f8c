// Package tutor composes the mentor persona with per-operation prompts and
// interprets the completion service's answers for three operations: generating
// topic explanations, evaluating a learner's answer, and revising an
// explanation after a correction.
//
// The Tutor holds a single generation.Completer and no other state. Every
// operation issues its requests sequentially and surfaces the first failure.
package tutor
