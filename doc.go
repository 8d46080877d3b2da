// Package cohere is a Go client for the Cohere REST API.
//
// The request and response models (models.gen.go) and the HTTP operations
// (client.gen.go) are generated by oapi-codegen from
// openapi/cohere-openapi.yaml; run "go generate" after editing the
// description. CohereClient wraps the generated ClientWithResponses with
// authentication, retries, default models and typed errors:
//
//	client, err := cohere.NewCohereClient(cohere.Config{APIKey: os.Getenv("COHERE_API_KEY")})
//	if err != nil {
//		return err
//	}
//	text, err := client.ChatX(ctx, []cohere.ChatMessageV2{cohere.UserMessage("Hello!")})
package cohere
