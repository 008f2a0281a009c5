package tests

import "context"

func ctx() context.Context { return context.Background() }

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
