package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/dlist/internal/api/middleware"
	"github.com/povarna/dlist/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/lists").
			To(handler.ListNames).
			Doc("Names of the stored lists").
			Metadata(restfulspec.KeyOpenAPITags, []string{"lists"}).
			Writes(ListsResponse{}).
			Returns(200, "OK", ListsResponse{}))

	ws.
		Route(ws.GET("/lists/{name}").
			To(handler.Render).
			Doc("Render a list head to tail").
			Metadata(restfulspec.KeyOpenAPITags, []string{"lists"}).
			Param(ws.PathParameter("name", "List name").DataType("string")).
			Writes(models.Result{}).
			Returns(200, "OK", models.Result{}).
			Returns(404, "List Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/lists/{name}/commands").
			To(handler.Command).
			Doc("Apply a command to a list").
			Metadata(restfulspec.KeyOpenAPITags, []string{"commands"}).
			Param(ws.PathParameter("name", "List name").DataType("string")).
			Reads(CommandRequest{}).
			Writes(models.Result{}).
			Returns(200, "OK", models.Result{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "List Not Found", middleware.ErrorResponse{}).
			Returns(422, "List Operation Failed", models.Result{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.DELETE("/lists/{name}").
			To(handler.Drop).
			Doc("Drop a list").
			Metadata(restfulspec.KeyOpenAPITags, []string{"lists"}).
			Param(ws.PathParameter("name", "List name").DataType("string")).
			Returns(204, "No Content", nil).
			Returns(404, "List Not Found", middleware.ErrorResponse{}))

	container.Add(ws)
}
