package api

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"picnicapi/server/internal/errs"
)

var fieldNamesOnce sync.Once

// registerFieldNames переключает валидатор gin на имена из тегов form/json,
// чтобы в ошибках было picnic_id, а не PicnicID
func registerFieldNames() {
	fieldNamesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(fieldName)
		}
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// bindQuery биндит query-параметры. Нечисловое значение числового параметра
// превращается в 400 с именем этого параметра.
func bindQuery(c *gin.Context, obj any) error {
	err := c.ShouldBindQuery(obj)
	if err == nil {
		return nil
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		query := c.Request.URL.Query()
		keys := make([]string, 0, len(query))
		for key := range query {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, value := range query[key] {
				if value == numErr.Num {
					return errs.NewBadRequestError(
						fmt.Sprintf("%s parameter must be a non-negative integer", key),
						errs.FieldError{Field: key, Error: "must be a non-negative integer"})
				}
			}
		}
	}
	return errs.FromBindError(err)
}
