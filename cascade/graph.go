// Package cascade propagates delete, count, and soft-delete operations
// from an owning entity to its dependents. The storage schema enforces
// no foreign-key cascades (soft deletes make that impossible), so
// referential cleanup lives here, driven by one declarative dependency
// map instead of one hand-written function per entity.
package cascade

import (
	"reflect"

	"github.com/kartify-commerce/kartify-backend/models"
)

// Kind names an entity participating in the dependency graph. The
// string values double as keys in resolver responses.
type Kind string

const (
	KindUser              Kind = "user"
	KindBanner            Kind = "banner"
	KindImage             Kind = "image"
	KindCart              Kind = "cart"
	KindCartItem          Kind = "cartItem"
	KindCategory          Kind = "category"
	KindCity              Kind = "city"
	KindState             Kind = "state"
	KindCountry           Kind = "country"
	KindOrder             Kind = "order"
	KindOrderItem         Kind = "orderItem"
	KindPincode           Kind = "pincode"
	KindProduct           Kind = "product"
	KindShipping          Kind = "shipping"
	KindAddress           Kind = "address"
	KindWallet            Kind = "wallet"
	KindWalletTransaction Kind = "walletTransaction"
	KindUserAuthSettings  Kind = "userAuthSettings"
	KindUserTokens        Kind = "userTokens"
	KindRole              Kind = "role"
	KindProjectRoute      Kind = "projectRoute"
	KindRouteRole         Kind = "routeRole"
	KindUserRole          Kind = "userRole"
)

// Relation declares one dependent: rows of Kind whose listed foreign
// key columns reference the owning entity's ids.
type Relation struct {
	Kind    Kind
	Columns []string
}

// relations is the hand-maintained fan-out map. Fan-out is one level
// only: dependents of dependents are not walked, except where a chain
// is declared explicitly (deleting a user removes both carts and the
// cart items that user added, as separate relations).
var relations = map[Kind][]Relation{
	KindUser: {
		{KindUser, []string{"added_by", "updated_by"}},
		{KindBanner, []string{"seller_id", "added_by", "updated_by"}},
		{KindImage, []string{"added_by", "updated_by"}},
		{KindCart, []string{"customer_id", "added_by", "updated_by"}},
		{KindCartItem, []string{"added_by", "updated_by"}},
		{KindCategory, []string{"added_by", "updated_by"}},
		{KindCity, []string{"added_by", "updated_by"}},
		{KindState, []string{"added_by", "updated_by"}},
		{KindCountry, []string{"added_by", "updated_by"}},
		{KindOrder, []string{"customer_id", "seller_id", "added_by", "updated_by"}},
		{KindOrderItem, []string{"added_by", "updated_by"}},
		{KindPincode, []string{"added_by", "updated_by"}},
		{KindProduct, []string{"seller_id", "added_by", "updated_by"}},
		{KindShipping, []string{"added_by", "updated_by"}},
		{KindAddress, []string{"added_by", "updated_by"}},
		{KindWallet, []string{"user_id", "added_by", "updated_by"}},
		{KindWalletTransaction, []string{"user_id", "added_by", "updated_by"}},
		{KindUserAuthSettings, []string{"user_id", "added_by", "updated_by"}},
		{KindUserTokens, []string{"user_id", "added_by", "updated_by"}},
		{KindUserRole, []string{"user_id"}},
	},
	KindBanner: {
		{KindImage, []string{"banner_id"}},
	},
	KindCart: {
		{KindCartItem, []string{"cart_id"}},
	},
	KindCategory: {
		{KindProduct, []string{"category_id", "sub_category_id"}},
	},
	KindCity: {
		{KindPincode, []string{"city_id"}},
		{KindAddress, []string{"city_id"}},
	},
	KindState: {
		{KindCity, []string{"state_id"}},
		{KindPincode, []string{"state_id"}},
		{KindAddress, []string{"state_id"}},
	},
	KindCountry: {
		{KindState, []string{"country_id"}},
		{KindPincode, []string{"country_id"}},
	},
	KindOrder: {
		{KindOrderItem, []string{"order_id"}},
		{KindShipping, []string{"order_id"}},
	},
	KindPincode: {
		{KindAddress, []string{"pincode_id"}},
	},
	KindProduct: {
		{KindCartItem, []string{"product_id"}},
		{KindOrderItem, []string{"product_id"}},
	},
	KindShipping: {
		{KindAddress, []string{"shipping_id"}},
	},
	KindWallet: {
		{KindWalletTransaction, []string{"wallet_id"}},
	},
	KindRole: {
		{KindRouteRole, []string{"role_id"}},
		{KindUserRole, []string{"role_id"}},
	},
	KindProjectRoute: {
		{KindRouteRole, []string{"route_id"}},
	},
}

type entityDef struct {
	model func() any
	slice func() any
}

var entities = map[Kind]entityDef{
	KindUser:              {func() any { return &models.User{} }, func() any { return &[]models.User{} }},
	KindBanner:            {func() any { return &models.Banner{} }, func() any { return &[]models.Banner{} }},
	KindImage:             {func() any { return &models.Image{} }, func() any { return &[]models.Image{} }},
	KindCart:              {func() any { return &models.Cart{} }, func() any { return &[]models.Cart{} }},
	KindCartItem:          {func() any { return &models.CartItem{} }, func() any { return &[]models.CartItem{} }},
	KindCategory:          {func() any { return &models.Category{} }, func() any { return &[]models.Category{} }},
	KindCity:              {func() any { return &models.City{} }, func() any { return &[]models.City{} }},
	KindState:             {func() any { return &models.State{} }, func() any { return &[]models.State{} }},
	KindCountry:           {func() any { return &models.Country{} }, func() any { return &[]models.Country{} }},
	KindOrder:             {func() any { return &models.Order{} }, func() any { return &[]models.Order{} }},
	KindOrderItem:         {func() any { return &models.OrderItem{} }, func() any { return &[]models.OrderItem{} }},
	KindPincode:           {func() any { return &models.Pincode{} }, func() any { return &[]models.Pincode{} }},
	KindProduct:           {func() any { return &models.Product{} }, func() any { return &[]models.Product{} }},
	KindShipping:          {func() any { return &models.Shipping{} }, func() any { return &[]models.Shipping{} }},
	KindAddress:           {func() any { return &models.Address{} }, func() any { return &[]models.Address{} }},
	KindWallet:            {func() any { return &models.Wallet{} }, func() any { return &[]models.Wallet{} }},
	KindWalletTransaction: {func() any { return &models.WalletTransaction{} }, func() any { return &[]models.WalletTransaction{} }},
	KindUserAuthSettings:  {func() any { return &models.UserAuthSettings{} }, func() any { return &[]models.UserAuthSettings{} }},
	KindUserTokens:        {func() any { return &models.UserToken{} }, func() any { return &[]models.UserToken{} }},
	KindRole:              {func() any { return &models.Role{} }, func() any { return &[]models.Role{} }},
	KindProjectRoute:      {func() any { return &models.ProjectRoute{} }, func() any { return &[]models.ProjectRoute{} }},
	KindRouteRole:         {func() any { return &models.RouteRole{} }, func() any { return &[]models.RouteRole{} }},
	KindUserRole:          {func() any { return &models.UserRole{} }, func() any { return &[]models.UserRole{} }},
}

// Known reports whether kind participates in the graph.
func Known(kind Kind) bool {
	_, ok := entities[kind]
	return ok
}

// Kinds lists every registered entity kind.
func Kinds() []Kind {
	out := make([]Kind, 0, len(entities))
	for k := range entities {
		out = append(out, k)
	}
	return out
}

// NewModel returns a zero-valued model pointer for kind.
func NewModel(kind Kind) any { return entities[kind].model() }

// NewSlice returns a pointer to an empty slice of kind's model.
func NewSlice(kind Kind) any { return entities[kind].slice() }

// idsOf extracts primary keys from a *[]Entity returned by FindAll.
func idsOf(slicePtr any) []int {
	rv := reflect.ValueOf(slicePtr).Elem()
	ids := make([]int, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ids = append(ids, int(rv.Index(i).FieldByName("ID").Int()))
	}
	return ids
}
