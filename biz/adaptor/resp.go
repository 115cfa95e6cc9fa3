package adaptor

// HTTP 响应相关

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/chat-core-api/pkg/errorx"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
	"github.com/xh-polaris/gopkg/util"
)

// PostProcess 处理http响应, resp要求指针类型
// 在日志中记录本次调用详情
// 最佳实践:
// - 在controller中调用业务处理, 处理结束后调用PostProcess
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	logs.CtxInfof(ctx, "[%s] req=%s, resp=%s, err=%s", c.Path(), util.JSONF(req), util.JSONF(resp), errorx.ErrorWithoutStack(err))

	// 无错, 正常响应
	if err == nil {
		c.JSON(hertz.StatusOK, makeResponse(resp))
		return
	}
	PostError(ctx, c, err)
}

// PostError 处理错误
// StatusError按注册的HTTP状态码返回, 其余错误一律500
func PostError(ctx context.Context, c *app.RequestContext, err error) {
	var se errorx.StatusError
	if errors.As(err, &se) {
		logs.CtxWarnf(ctx, "[ErrorX] error: %v %v", se.Code(), err)
		c.AbortWithStatusJSON(se.HTTPStatus(), utils.H{"success": false, "error": se.Msg()})
		return
	}
	logs.CtxErrorf(ctx, "internal error, err=%s", errorx.ErrorWithoutStack(err))
	c.AbortWithStatusJSON(hertz.StatusInternalServerError, utils.H{"success": false, "error": err.Error()})
}

// makeResponse 通过反射将resp的json字段平铺进带success标记的响应体
func makeResponse(resp any) map[string]any {
	response := map[string]any{"success": true}
	if resp == nil {
		return response
	}
	v := reflect.ValueOf(resp)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return response
	}
	v = v.Elem()

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		if fieldValue := v.Field(i).Interface(); !reflect.ValueOf(fieldValue).IsZero() || !strings.Contains(jsonTag, "omitempty") {
			response[name] = fieldValue
		}
	}
	return response
}
