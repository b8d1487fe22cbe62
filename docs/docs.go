// Package docs registers the OpenAPI document served under /swagger.
// Keep it in sync with the annotations in internal/api/router.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/metrics/calculateJsonTextMetrics": {
            "get": {
                "description": "Scores two JSON arrays of tagged entities by exact membership. Data is null when either file cannot be loaded.",
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Set match metrics for JSON entity files",
                "parameters": [
                    {"type": "string", "description": "Prediction entity file", "name": "predPath", "in": "query", "required": true},
                    {"type": "string", "description": "Ground truth entity file", "name": "gtPath", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/dto.CommonResult"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/metrics.Metrics"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResult"}}
                }
            }
        },
        "/metrics/calculateTextLightMetrics": {
            "post": {
                "description": "Computes the macro averaged record carrying the pooled TP, FP and FN",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Macro metrics for BIO tagged files",
                "parameters": [
                    {"description": "Truth and prediction file paths", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/dto.CommonResult"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/metrics.Metrics"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.CommonResult"}}
                }
            }
        },
        "/metrics/calculateTextMetrics": {
            "post": {
                "description": "Computes micro, macro and per-class precision, recall, F1 and accuracy",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Entity level metrics for BIO tagged files",
                "parameters": [
                    {"description": "Truth and prediction file paths", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/dto.CommonResult"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/evaluate.Result"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.CommonResult"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CommonResult": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "requestId": {"type": "string"},
                "status": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.EvaluateRequest": {
            "type": "object",
            "properties": {
                "predFilePath": {"type": "string", "example": "data/pred.txt"},
                "trueFilePath": {"type": "string", "example": "data/truth.txt"}
            }
        },
        "evaluate.Result": {
            "type": "object",
            "properties": {
                "macro": {"$ref": "#/definitions/metrics.Metrics"},
                "micro": {"$ref": "#/definitions/metrics.Metrics"},
                "perClass": {"type": "array", "items": {"$ref": "#/definitions/metrics.Metrics"}}
            }
        },
        "metrics.Metrics": {
            "type": "object",
            "properties": {
                "FN": {"type": "integer"},
                "FP": {"type": "integer"},
                "TN": {"type": "integer"},
                "TP": {"type": "integer"},
                "accuracy": {"type": "number"},
                "class": {"type": "string"},
                "f1": {"type": "number"},
                "precision": {"type": "number"},
                "recall": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NER Eval API",
	Description:      "Entity level evaluation of named entity recognition output",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
