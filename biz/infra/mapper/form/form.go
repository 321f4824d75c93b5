package form

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form 表单参照表的一条记录, form_name为人类可读名称, link为文档直链
type Form struct {
	FormId   primitive.ObjectID `json:"form_id" bson:"_id"`
	FormName string             `json:"form_name" bson:"form_name"`
	Link     string             `json:"link" bson:"link"`
}
