package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "IGV Browser Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the IGV browser API!"
	SERVICE_DESCRIPTION ServiceInfo = "Builds and synchronizes igv.js genome browser configurations."

	SERVICE_ARTIFACT    ServiceInfo = "igv"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.igv:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
)
