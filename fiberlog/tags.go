package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	authutils "job-portal-backend/lib/utils/auth-utils"
)

const (
	TagPid               = "pid"
	TagLatency           = "latency"
	TagStatus            = "status"
	TagMethod            = "method"
	TagPath              = "path"
	TagURL               = "url"
	TagIP                = "ip"
	TagUA                = "ua"
	TagBody              = "body"
	TagResBody           = "resBody"
	TagQueryStringParams = "queryParams"
	TagUserID            = "userID"
	RequestID            = "requestId"
)

// FuncTag returns the value logged under a tag.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

const maxBodyLen = 2048

func truncate(body []byte) string {
	if len(body) > maxBodyLen {
		return string(body[:maxBodyLen]) + "..."
	}
	return string(body)
}

var funcTags = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagURL: func(c *fiber.Ctx, d *data) interface{} {
		return c.OriginalURL()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagUA: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderUserAgent)
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		if c.Is("json") {
			return truncate(c.Body())
		}
		return ""
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		if string(c.Response().Header.ContentType()) == fiber.MIMEApplicationJSON {
			return truncate(c.Response().Body())
		}
		return ""
	},
	TagQueryStringParams: func(c *fiber.Ctx, d *data) interface{} {
		return c.Request().URI().QueryArgs().String()
	},
	TagUserID: func(c *fiber.Ctx, d *data) interface{} {
		return authutils.GetStringClaim(c, "sub")
	},
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		return c.GetRespHeader(fiber.HeaderXRequestID)
	},
}

// getFuncTagMap picks the tag functions named in cfg; unknown tags are ignored.
func getFuncTagMap(cfg Config) map[string]FuncTag {
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTags[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}
