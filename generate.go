package cohere

//go:generate go tool oapi-codegen --config=oapi-codegen-models.yaml openapi/cohere-openapi.yaml
//go:generate go tool oapi-codegen --config=oapi-codegen-client.yaml openapi/cohere-openapi.yaml
