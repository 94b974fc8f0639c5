package classify

// DefaultRuleset returns the built-in keyword tables. Hand-curated and
// incomplete by construction; extend the lists as new app categories show up
// in the directory, or override the whole table with a YAML rules file.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Potential: FieldRules{
			Default: "low",
			Rules: []Rule{
				{
					Value: "medium",
					Keywords: []string{
						"ai", "artificial intelligence", "machine learning", "neural",
						"deep learning", "predictive", "analytics", "intelligence",
						"automation", "smart",
					},
					Sub: []Rule{
						{
							Value: "veryHigh",
							Keywords: []string{
								"advanced", "sophisticated", "cutting-edge",
								"next-generation", "revolutionary",
							},
						},
						{
							Value: "high",
							Keywords: []string{
								"powerful", "comprehensive", "enterprise", "professional",
							},
						},
					},
				},
			},
		},
		Risk: FieldRules{
			Default: "minimal",
			Rules: []Rule{
				{
					Value: "limited",
					Keywords: []string{
						"security", "compliance", "privacy", "data protection",
						"encryption", "audit", "governance", "risk management",
					},
					Sub: []Rule{
						{
							Value: "high",
							Keywords: []string{
								"critical", "sensitive", "confidential", "regulated",
								"financial",
							},
						},
					},
				},
				{
					Value: "limited",
					Keywords: []string{
						"social media", "public", "consumer", "marketing",
					},
				},
			},
		},
		Usage: FieldRules{
			Default: "noAiUsage",
			Rules: []Rule{
				{
					Value: "aiEnabled",
					Keywords: []string{
						"ai-powered", "ai-enabled", "artificial intelligence",
						"machine learning", "neural network", "deep learning",
						"predictive analytics", "intelligent",
					},
				},
				{
					Value: "aiAvailable",
					Keywords: []string{
						"analytics", "insights", "data analysis", "reporting",
						"dashboard",
					},
				},
			},
		},
		Type: FieldRules{
			Default: "Other",
			Rules: []Rule{
				{
					Value: "llm",
					Keywords: []string{
						"llm", "large language model", "gpt", "chatbot",
						"conversational", "nlp", "natural language",
						"text generation", "language model",
					},
				},
				{
					Value: "neuralNet",
					Keywords: []string{
						"neural network", "deep learning", "cnn", "rnn",
						"transformer", "neural",
					},
				},
				{
					Value: "machineLearning",
					Keywords: []string{
						"machine learning", "ml", "algorithm", "prediction",
						"classification", "regression", "clustering",
						"recommendation",
					},
				},
			},
		},
	}
}
