package apierrors

const (
	MsgInvalidID         = "invalidID"
	MsgInvalidQuery      = "invalidQuery"
	MsgMalformedBody     = "malformedBody"
	MsgItemNotFound      = "itemNotFound"
	MsgCategoryNotFound  = "categoryNotFound"
	MsgCategoryNameTaken = "categoryNameTaken"
	MsgCategoryInUse     = "categoryInUse"
	MsgRateLimited       = "rateLimited"
	MsgRouteNotFound     = "routeNotFound"

	MsgFailListItems       = "failListItems"
	MsgFailGetItem         = "failGetItem"
	MsgFailCreateItem      = "failCreateItem"
	MsgFailUpdateItem      = "failUpdateItem"
	MsgFailDeleteItem      = "failDeleteItem"
	MsgFailListCategories  = "failListCategories"
	MsgFailGetCategory     = "failGetCategory"
	MsgFailCreateCategory  = "failCreateCategory"
	MsgFailRenameCategory  = "failRenameCategory"
	MsgFailDeleteCategory  = "failDeleteCategory"
	MsgInternalServerError = "internalServerError"
)
